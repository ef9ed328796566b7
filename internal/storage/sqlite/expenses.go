package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmynk/roomiesync/internal/models"
)

// ListExpenses returns the whole ledger ordered by date.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, amount, paid_by, category, date, split_among FROM expenses ORDER BY date, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var (
			e     models.Expense
			date  int64
			split string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.PaidBy, &e.Category, &date, &split); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Date = fromMillis(date)
		if err := json.Unmarshal([]byte(split), &e.SplitAmong); err != nil {
			return nil, fmt.Errorf("failed to decode split of expense %s: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense appends an expense to the ledger. Ledger entries are never updated,
// so an existing ID yields storage.ErrConflict.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	split := e.SplitAmong
	if split == nil {
		split = []string{}
	}
	splitJSON, err := json.Marshal(split)
	if err != nil {
		return fmt.Errorf("failed to encode split: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, paid_by, category, date, split_among)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		e.ID, e.Title, e.Amount, e.PaidBy, e.Category, toMillis(e.Date), string(splitJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return insertedOne(res, "expense", e.ID)
}
