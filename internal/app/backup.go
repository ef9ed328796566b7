package app

import (
	"context"
	"fmt"

	"github.com/mmynk/roomiesync/internal/transfer"
)

// Backup captures every collection of s.
func (c *Controller) Backup(s State) transfer.Backup {
	return transfer.NewBackup(s.Roommates, s.Expenses, s.Tasks, s.Messages, s.Budgets, c.now())
}

// Restore writes the backup's collections to the store and returns the state
// reloaded from it. The session is kept. On the local store every collection is
// replaced. The remote store never deletes expenses, tasks or messages, so records
// missing from the backup survive there and appear in the returned state.
func (c *Controller) Restore(ctx context.Context, s State, b transfer.Backup) (State, error) {
	saves := []struct {
		name string
		save func() error
	}{
		{"roommates", func() error { return c.store.SaveRoommates(ctx, b.Roommates) }},
		{"expenses", func() error { return c.store.SaveExpenses(ctx, b.Expenses) }},
		{"tasks", func() error { return c.store.SaveTasks(ctx, b.Tasks) }},
		{"messages", func() error { return c.store.SaveMessages(ctx, b.Messages) }},
		{"budgets", func() error { return c.store.SaveBudgets(ctx, b.Budget()) }},
	}
	for i, step := range saves {
		if err := step.save(); err != nil {
			err = fmt.Errorf("failed to restore %s: %w", step.name, err)
			if i == 0 {
				return s, err
			}
			return c.Load(ctx), err
		}
	}

	next := c.Load(ctx)
	if len(next.Expenses) != len(b.Expenses) || len(next.Tasks) != len(b.Tasks) || len(next.Messages) != len(b.Messages) {
		c.log.Warn("Backup merged with existing records",
			"expenses", len(next.Expenses),
			"tasks", len(next.Tasks),
			"messages", len(next.Messages),
		)
	}
	c.log.Info("Backup restored",
		"roommates", len(b.Roommates),
		"expenses", len(b.Expenses),
		"tasks", len(b.Tasks),
		"messages", len(b.Messages),
	)
	return next, nil
}
