package sqlite

import (
	"context"
	"fmt"
)

// Budgets returns the allocation per category.
func (s *SQLiteStore) Budgets(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT category, amount FROM budgets")
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := map[string]float64{}
	for rows.Next() {
		var (
			category string
			amount   float64
		)
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets[category] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

// ReplaceBudgets deletes every allocation and inserts the given ones in one transaction.
func (s *SQLiteStore) ReplaceBudgets(ctx context.Context, budgets map[string]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM budgets"); err != nil {
		return fmt.Errorf("failed to clear budgets: %w", err)
	}
	for category, amount := range budgets {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO budgets (category, amount) VALUES (?, ?)", category, amount,
		); err != nil {
			return fmt.Errorf("failed to insert budget: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// BudgetLabels returns the display label per category.
func (s *SQLiteStore) BudgetLabels(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT category, label FROM budget_labels")
	if err != nil {
		return nil, fmt.Errorf("failed to list budget labels: %w", err)
	}
	defer rows.Close()

	labels := map[string]string{}
	for rows.Next() {
		var category, label string
		if err := rows.Scan(&category, &label); err != nil {
			return nil, fmt.Errorf("failed to scan budget label: %w", err)
		}
		labels[category] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budget labels: %w", err)
	}
	return labels, nil
}

// ReplaceBudgetLabels deletes every label and inserts the given ones in one transaction.
func (s *SQLiteStore) ReplaceBudgetLabels(ctx context.Context, labels map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM budget_labels"); err != nil {
		return fmt.Errorf("failed to clear budget labels: %w", err)
	}
	for category, label := range labels {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO budget_labels (category, label) VALUES (?, ?)", category, label,
		); err != nil {
			return fmt.Errorf("failed to insert budget label: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
