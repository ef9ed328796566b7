// Package calculator derives display aggregates from the household ledger.
//
// Every function is pure: it reads an immutable snapshot of expenses, roommates and
// budgets and returns fresh values. Sums are folded with decimal arithmetic and
// converted back to float64 at the boundary.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomiesync/internal/models"
)

// Totals summarizes the pooled household fund.
type Totals struct {
	Collected   float64 // Sum of contribution entries
	Spent       float64 // Sum of every other entry
	PoolBalance float64 // Collected - Spent
}

// CalculateTotals computes total collected, total spent and the pool balance.
func CalculateTotals(expenses []models.Expense) Totals {
	collected, spent := decimal.Zero, decimal.Zero
	for _, e := range expenses {
		if e.IsContribution() {
			collected = collected.Add(amount(e.Amount))
		} else {
			spent = spent.Add(amount(e.Amount))
		}
	}
	return Totals{
		Collected:   collected.InexactFloat64(),
		Spent:       spent.InexactFloat64(),
		PoolBalance: collected.Sub(spent).InexactFloat64(),
	}
}

// CategorySpending sums non-contribution expenses per category key.
// Keys are matched exactly, so "grocery" and "Grocery" are separate buckets.
func CategorySpending(expenses []models.Expense) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.IsContribution() {
			continue
		}
		sums[e.Category] = sums[e.Category].Add(amount(e.Amount))
	}
	return toFloats(sums)
}

// spentIn sums every expense in the given category.
func spentIn(expenses []models.Expense, category string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Category == category {
			total = total.Add(amount(e.Amount))
		}
	}
	return total
}

func amount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func toFloats(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}
