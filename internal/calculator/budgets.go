package calculator

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomiesync/internal/models"
)

// CustomPrefix marks budget keys created by the household rather than built in.
const CustomPrefix = "Custom-"

// BudgetRow is the health of one allocated category.
type BudgetRow struct {
	Category  string
	Label     string
	Allocated float64
	Spent     float64

	// Remaining is Allocated - Spent and is negative on overrun.
	Remaining float64

	// PercentUsed is Spent/Allocated*100 clamped to [0, 100] for progress bars.
	// The unclamped numbers stay in Spent and Remaining.
	PercentUsed float64
}

// Overrun reports whether spending exceeded the allocation.
func (b BudgetRow) Overrun() bool {
	return b.Spent > b.Allocated
}

// BudgetHealth returns one row per category with a positive allocation, in
// DisplayCategories order. Categories allocated zero are left out.
func BudgetHealth(budgets models.Budgets, expenses []models.Expense) []BudgetRow {
	var rows []BudgetRow
	for _, category := range DisplayCategories(budgets.Allocations) {
		allocated := amount(budgets.Allocations[category])
		if !allocated.IsPositive() {
			continue
		}
		spent := spentIn(expenses, category)

		percent := spent.Div(allocated).Mul(decimal.NewFromInt(100))
		if percent.GreaterThan(decimal.NewFromInt(100)) {
			percent = decimal.NewFromInt(100)
		}

		rows = append(rows, BudgetRow{
			Category:    category,
			Label:       CategoryLabel(category, budgets.Labels),
			Allocated:   allocated.InexactFloat64(),
			Spent:       spent.InexactFloat64(),
			Remaining:   allocated.Sub(spent).InexactFloat64(),
			PercentUsed: percent.InexactFloat64(),
		})
	}
	return rows
}

// BudgetSummary compares what was collected with what was allocated.
type BudgetSummary struct {
	TotalAllocated float64
	// Unallocated is Collected - TotalAllocated.
	Unallocated float64
}

// BudgetOverview totals every allocation and reports how much of the collected pool
// is not yet assigned to a category.
func BudgetOverview(budgets models.Budgets, expenses []models.Expense) BudgetSummary {
	allocated := decimal.Zero
	for _, v := range budgets.Allocations {
		allocated = allocated.Add(amount(v))
	}
	collected := decimal.Zero
	for _, e := range expenses {
		if e.IsContribution() {
			collected = collected.Add(amount(e.Amount))
		}
	}
	return BudgetSummary{
		TotalAllocated: allocated.InexactFloat64(),
		Unallocated:    collected.Sub(allocated).InexactFloat64(),
	}
}

// DisplayCategories lists the standard spend categories followed by any other
// budget keys, sorted. The contribution category never appears.
func DisplayCategories(allocations map[string]float64) []string {
	out := make([]string, 0, len(models.StandardCategories)+len(allocations))
	out = append(out, models.StandardCategories...)

	var custom []string
	for key := range allocations {
		if key == models.CategoryContribution || models.IsKnownCategory(key) {
			continue
		}
		custom = append(custom, key)
	}
	sort.Strings(custom)
	return append(out, custom...)
}

// CategoryLabel picks the display name of a category: the household label when set,
// the key itself for known categories, and "Other" for unlabeled custom keys.
func CategoryLabel(category string, labels map[string]string) string {
	if label := strings.TrimSpace(labels[category]); label != "" {
		return label
	}
	if models.IsKnownCategory(category) {
		return category
	}
	return models.CategoryOther
}
