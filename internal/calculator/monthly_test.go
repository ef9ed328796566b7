package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
)

func TestMonthlySummary(t *testing.T) {
	march := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		{ID: "a", Title: "Rent in", Amount: 6000, PaidBy: "1", Category: models.CategoryContribution, Date: march, SplitAmong: []string{"1"}},
		{ID: "b", Title: "Veggies", Amount: 400, PaidBy: "2", Category: models.CategoryVeg, Date: march, SplitAmong: []string{"1", "2"}},
		{ID: "c", Title: "Groceries", Amount: 600, PaidBy: "1", Category: models.CategoryGrocery, Date: march, SplitAmong: []string{"1", "2"}},
		{ID: "d", Title: "More veggies", Amount: 100, PaidBy: "2", Category: models.CategoryVeg, Date: march, SplitAmong: []string{"2"}},
		{ID: "e", Title: "April rent", Amount: 5000, PaidBy: "1", Category: models.CategoryRent, Date: april, SplitAmong: []string{"1"}},
	}

	got := MonthlySummary(expenses, 2025, time.March, time.UTC)

	if len(got.Transactions) != 4 {
		t.Fatalf("got %d transactions, want 4", len(got.Transactions))
	}
	if got.Totals.Collected != 6000 || got.Totals.Spent != 1100 || got.Totals.PoolBalance != 4900 {
		t.Errorf("totals = %+v", got.Totals)
	}

	wantCategories := []CategoryAmount{
		{Category: models.CategoryVeg, Amount: 500},
		{Category: models.CategoryGrocery, Amount: 600},
	}
	if len(got.ByCategory) != len(wantCategories) {
		t.Fatalf("ByCategory = %+v, want %+v", got.ByCategory, wantCategories)
	}
	for i, want := range wantCategories {
		if got.ByCategory[i] != want {
			t.Errorf("ByCategory[%d] = %+v, want %+v", i, got.ByCategory[i], want)
		}
	}

	empty := MonthlySummary(expenses, 2024, time.December, time.UTC)
	if !empty.Empty() {
		t.Errorf("expected no transactions in December 2024, got %d", len(empty.Transactions))
	}
}

func TestTopCategories(t *testing.T) {
	got := TopCategories(map[string]float64{"A": 10, "B": 30, "C": 10})
	want := []string{"B", "A", "C"}
	for i, c := range want {
		if got[i].Category != c {
			t.Errorf("TopCategories()[%d] = %s, want %s", i, got[i].Category, c)
		}
	}
}
