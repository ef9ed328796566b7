package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
)

// CategoryAmount is an amount aggregated under one category key.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// MonthSummary is the ledger restricted to one calendar month.
type MonthSummary struct {
	Year  int
	Month time.Month

	Totals Totals

	// ByCategory holds non-contribution spending, in first-seen order.
	ByCategory []CategoryAmount

	// Transactions are the month's expenses in ledger order.
	Transactions []models.Expense
}

// Empty reports whether the month has no transactions.
func (s MonthSummary) Empty() bool {
	return len(s.Transactions) == 0
}

// MonthlySummary filters the ledger to the given month in loc and aggregates it.
func MonthlySummary(expenses []models.Expense, year int, month time.Month, loc *time.Location) MonthSummary {
	summary := MonthSummary{Year: year, Month: month}
	for _, e := range expenses {
		d := e.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			summary.Transactions = append(summary.Transactions, e)
		}
	}
	summary.Totals = CalculateTotals(summary.Transactions)

	spending := CategorySpending(summary.Transactions)
	seen := make(map[string]bool, len(spending))
	for _, e := range summary.Transactions {
		if e.IsContribution() || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		summary.ByCategory = append(summary.ByCategory, CategoryAmount{
			Category: e.Category,
			Amount:   spending[e.Category],
		})
	}
	return summary
}

// TopCategories returns category spending sorted by amount, largest first.
func TopCategories(spending map[string]float64) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(spending))
	for k, v := range spending {
		out = append(out, CategoryAmount{Category: k, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount == out[j].Amount {
			return out[i].Category < out[j].Category
		}
		return out[i].Amount > out[j].Amount
	})
	return out
}
