package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/roomiesync/internal/models"
)

func TestMemberStats(t *testing.T) {
	roommates := models.SeedRoommates()

	tests := []struct {
		name         string
		expenses     []models.Expense
		validateFunc func(t *testing.T, stats []MemberStat)
	}{
		{
			name:     "full contribution means all paid up",
			expenses: []models.Expense{contribution("1", 6000)},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				alice, _ := FindMemberStat(stats, "1")
				if alice.Dues != 0 {
					t.Errorf("Alice dues = %v, want 0", alice.Dues)
				}
				if !alice.AllPaidUp() {
					t.Error("expected Alice to be all paid up")
				}
				if alice.Contributed != 6000 {
					t.Errorf("Alice contributed = %v, want 6000", alice.Contributed)
				}
			},
		},
		{
			name:     "partial contribution leaves dues",
			expenses: []models.Expense{contribution("1", 2000)},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				alice, _ := FindMemberStat(stats, "1")
				if alice.Dues != 4000 {
					t.Errorf("Alice dues = %v, want 4000", alice.Dues)
				}
				if alice.AllPaidUp() {
					t.Error("Alice should still owe money")
				}
			},
		},
		{
			name:     "overpayment floors displayed dues at zero",
			expenses: []models.Expense{contribution("2", 7500)},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				bob, _ := FindMemberStat(stats, "2")
				if bob.Dues != 0 {
					t.Errorf("Bob dues = %v, want 0", bob.Dues)
				}
				if bob.Balance != -1500 {
					t.Errorf("Bob balance = %v, want -1500", bob.Balance)
				}
			},
		},
		{
			name: "share divides each expense among its participants",
			expenses: []models.Expense{
				spend(models.CategoryGrocery, 300, "1", "1", "2", "3"),
				spend(models.CategoryNonVeg, 200, "3", "1", "3"),
			},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				// Alice: 100 + 100, Bob: 100, Charlie: 100 + 100
				want := map[string]float64{"1": 200, "2": 100, "3": 200}
				for id, share := range want {
					s, _ := FindMemberStat(stats, id)
					if math.Abs(s.Share-share) > 0.01 {
						t.Errorf("%s share = %v, want %v", s.Name, s.Share, share)
					}
				}
			},
		},
		{
			name: "contributions never count as consumption",
			expenses: []models.Expense{
				contribution("1", 6000),
			},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				for _, s := range stats {
					if s.Share != 0 {
						t.Errorf("%s share = %v, want 0", s.Name, s.Share)
					}
				}
			},
		},
		{
			name: "empty split set contributes nothing",
			expenses: []models.Expense{
				spend(models.CategoryOther, 90, "1"),
			},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				for _, s := range stats {
					if s.Share != 0 {
						t.Errorf("%s share = %v, want 0", s.Name, s.Share)
					}
				}
			},
		},
		{
			name: "rounded share for display",
			expenses: []models.Expense{
				spend(models.CategoryUtilities, 100, "1", "1", "2", "3"),
			},
			validateFunc: func(t *testing.T, stats []MemberStat) {
				s, _ := FindMemberStat(stats, "2")
				if s.RoundedShare != 33 {
					t.Errorf("RoundedShare = %v, want 33", s.RoundedShare)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := MemberStats(roommates, tt.expenses)
			if len(stats) != len(roommates) {
				t.Fatalf("got %d stats, want %d", len(stats), len(roommates))
			}
			tt.validateFunc(t, stats)
		})
	}
}

func TestShareSumsToTotalSpent(t *testing.T) {
	everyone := []string{"1", "2", "3"}
	expenses := []models.Expense{
		contribution("1", 6000),
		spend(models.CategoryRent, 10000, "1", everyone...),
		spend(models.CategoryGrocery, 1234.56, "2", "1", "2"),
		spend(models.CategoryPetrol, 99.99, "3", "3"),
		spend(models.CategoryOther, 100, "2", everyone...),
	}

	var sum float64
	for _, id := range everyone {
		sum += ShareOf(expenses, id)
	}

	totals := CalculateTotals(expenses)
	if math.Abs(sum-totals.Spent) > 0.001 {
		t.Errorf("sum of shares = %v, want total spent %v", sum, totals.Spent)
	}
}
