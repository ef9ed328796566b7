package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

// ListTasks returns all tasks in insertion order.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, assigned_to, due_date, status, description, last_reminded
		 FROM tasks ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var (
			t            models.Task
			status       string
			lastReminded sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.AssignedTo, &t.DueDate, &status, &t.Description, &lastReminded); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Status = models.TaskStatus(status)
		if lastReminded.Valid {
			at := fromMillis(lastReminded.Int64)
			t.LastReminded = &at
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpsertTask inserts the task or replaces an existing one. A stored reminder timestamp
// is kept when the incoming task carries none.
func (s *SQLiteStore) UpsertTask(ctx context.Context, t *models.Task) error {
	query := `
		INSERT INTO tasks (id, title, assigned_to, due_date, status, description, last_reminded)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			assigned_to = excluded.assigned_to,
			due_date = excluded.due_date,
			status = excluded.status,
			description = excluded.description,
			last_reminded = COALESCE(excluded.last_reminded, tasks.last_reminded)
	`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.Title, t.AssignedTo, t.DueDate, string(t.Status), t.Description, nullMillis(t.LastReminded),
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// UpdateTaskStatus sets the status and reminder timestamp of an existing task.
func (s *SQLiteStore) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, lastReminded *time.Time) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, last_reminded = ? WHERE id = ?",
		string(status), nullMillis(lastReminded), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}
