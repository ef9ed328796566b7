package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
)

var day = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func contribution(payer string, amt float64) models.Expense {
	return models.Expense{
		ID:         "c-" + payer,
		Title:      models.ContributionTitle,
		Amount:     amt,
		PaidBy:     payer,
		Category:   models.CategoryContribution,
		Date:       day,
		SplitAmong: []string{payer},
	}
}

func spend(category string, amt float64, payer string, split ...string) models.Expense {
	return models.Expense{
		ID:         "e-" + category,
		Title:      category,
		Amount:     amt,
		PaidBy:     payer,
		Category:   category,
		Date:       day,
		SplitAmong: split,
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name          string
		expenses      []models.Expense
		wantCollected float64
		wantSpent     float64
		wantBalance   float64
	}{
		{
			name:     "empty ledger",
			expenses: nil,
		},
		{
			name: "contributions only",
			expenses: []models.Expense{
				contribution("1", 6000),
				contribution("2", 2000),
			},
			wantCollected: 8000,
			wantBalance:   8000,
		},
		{
			name: "mixed ledger",
			expenses: []models.Expense{
				contribution("1", 6000),
				spend(models.CategoryGrocery, 1200.50, "1", "1", "2"),
				spend(models.CategoryRent, 3000, "2", "1", "2", "3"),
			},
			wantCollected: 6000,
			wantSpent:     4200.50,
			wantBalance:   1799.50,
		},
		{
			name: "overspent pool goes negative",
			expenses: []models.Expense{
				contribution("1", 100),
				spend(models.CategoryPetrol, 250, "1", "1"),
			},
			wantCollected: 100,
			wantSpent:     250,
			wantBalance:   -150,
		},
		{
			name: "float drift does not accumulate",
			expenses: []models.Expense{
				spend(models.CategoryOther, 0.1, "1", "1"),
				spend(models.CategoryOther, 0.2, "1", "1"),
			},
			wantSpent:   0.3,
			wantBalance: -0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotals(tt.expenses)
			if got.Collected != tt.wantCollected {
				t.Errorf("Collected = %v, want %v", got.Collected, tt.wantCollected)
			}
			if got.Spent != tt.wantSpent {
				t.Errorf("Spent = %v, want %v", got.Spent, tt.wantSpent)
			}
			if got.PoolBalance != tt.wantBalance {
				t.Errorf("PoolBalance = %v, want %v", got.PoolBalance, tt.wantBalance)
			}
			// The pool balance is always collected minus spent.
			if math.Abs(got.PoolBalance-(got.Collected-got.Spent)) > 0.001 {
				t.Errorf("PoolBalance %v != Collected %v - Spent %v", got.PoolBalance, got.Collected, got.Spent)
			}
		})
	}
}

func TestCategorySpending(t *testing.T) {
	expenses := []models.Expense{
		contribution("1", 6000),
		spend(models.CategoryGrocery, 100, "1", "1"),
		spend(models.CategoryGrocery, 50, "2", "2"),
		spend("grocery", 10, "2", "2"),
		spend("Custom-42", 70, "3", "3"),
	}

	got := CategorySpending(expenses)

	want := map[string]float64{
		models.CategoryGrocery: 150,
		"grocery":              10,
		"Custom-42":            70,
	}
	if len(got) != len(want) {
		t.Fatalf("CategorySpending() returned %d categories, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("CategorySpending()[%q] = %v, want %v", k, got[k], v)
		}
	}
	if _, ok := got[models.CategoryContribution]; ok {
		t.Error("contributions must not appear in category spending")
	}
}
