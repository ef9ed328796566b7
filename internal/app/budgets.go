package app

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/mmynk/roomiesync/internal/models"
)

// UpdateBudgets replaces the allocations and labels. Admin only.
// Labels for categories without an allocation are dropped, as are blank labels.
func (c *Controller) UpdateBudgets(ctx context.Context, s State, b models.Budgets) (State, error) {
	if err := c.requireAdmin(s); err != nil {
		return s, err
	}

	next := models.NewBudgets()
	for category, amount := range b.Allocations {
		category = strings.TrimSpace(category)
		if category == "" || category == models.CategoryContribution {
			return s, fmt.Errorf("%w: category %q cannot be budgeted", ErrInvalidInput, category)
		}
		if amount < 0 {
			return s, fmt.Errorf("%w: negative allocation for %s", ErrInvalidInput, category)
		}
		next.Allocations[category] = amount
	}
	for category, label := range b.Labels {
		label = strings.TrimSpace(label)
		if _, ok := next.Allocations[category]; ok && label != "" {
			next.Labels[category] = label
		}
	}

	if err := c.store.SaveBudgets(ctx, next); err != nil {
		return s, fmt.Errorf("failed to save budgets: %w", err)
	}

	st := s.clone()
	st.Budgets = models.Budgets{
		Allocations: maps.Clone(next.Allocations),
		Labels:      maps.Clone(next.Labels),
	}
	c.log.Info("Budgets updated", "categories", len(next.Allocations))
	return st, nil
}
