package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

// ListMessages returns the chat feed ordered by timestamp, oldest first.
func (s *SQLiteStore) ListMessages(ctx context.Context) ([]models.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sender_id, content, timestamp, type, related_task_id, related_task_title, related_task_status
		 FROM messages ORDER BY timestamp ASC, rowid ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var (
			m                            models.ChatMessage
			ts                           int64
			msgType                      string
			taskID, taskTitle, taskState sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Content, &ts, &msgType, &taskID, &taskTitle, &taskState); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Timestamp = fromMillis(ts)
		m.Type = models.MessageType(msgType)
		if taskID.Valid {
			m.TaskSnapshot = &models.TaskSnapshot{
				TaskID: taskID.String,
				Title:  taskTitle.String,
				Status: models.TaskStatus(taskState.String),
			}
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}

// CreateMessage appends a message to the feed. An existing ID yields storage.ErrConflict.
func (s *SQLiteStore) CreateMessage(ctx context.Context, m *models.ChatMessage) error {
	var snap models.TaskSnapshot
	if m.TaskSnapshot != nil {
		snap = *m.TaskSnapshot
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, sender_id, content, timestamp, type, related_task_id, related_task_title, related_task_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		m.ID, m.SenderID, m.Content, toMillis(m.Timestamp), string(m.Type),
		nullString(snap.TaskID), nullString(snap.Title), nullString(string(snap.Status)),
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return insertedOne(res, "message", m.ID)
}

func insertedOne(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check inserted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrConflict)
	}
	return nil
}
