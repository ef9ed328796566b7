package models

// Budgets holds per-category allocations and their free-text labels.
// Both maps are edited and saved together, replacing the stored values wholesale.
type Budgets struct {
	Allocations map[string]float64
	Labels      map[string]string
}

// NewBudgets returns empty, non-nil maps.
func NewBudgets() Budgets {
	return Budgets{
		Allocations: map[string]float64{},
		Labels:      map[string]string{},
	}
}
