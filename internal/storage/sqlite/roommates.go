package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

const roommateColumns = "id, name, email, role, is_vegetarian, avatar_url, agreed_contribution"

// ListRoommates returns all roommates in insertion order.
func (s *SQLiteStore) ListRoommates(ctx context.Context) ([]models.Roommate, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+roommateColumns+" FROM roommates ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list roommates: %w", err)
	}
	defer rows.Close()

	roommates := []models.Roommate{}
	for rows.Next() {
		r, err := scanRoommate(rows)
		if err != nil {
			return nil, err
		}
		roommates = append(roommates, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roommates: %w", err)
	}
	return roommates, nil
}

// GetRoommate returns the roommate with the given ID or storage.ErrNotFound.
func (s *SQLiteStore) GetRoommate(ctx context.Context, id string) (*models.Roommate, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+roommateColumns+" FROM roommates WHERE id = ?", id)
	r, err := scanRoommate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("roommate %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UpsertRoommate inserts the roommate or replaces every field of an existing one.
func (s *SQLiteStore) UpsertRoommate(ctx context.Context, r *models.Roommate) error {
	query := `
		INSERT INTO roommates (id, name, email, role, is_vegetarian, avatar_url, agreed_contribution)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			is_vegetarian = excluded.is_vegetarian,
			avatar_url = excluded.avatar_url,
			agreed_contribution = excluded.agreed_contribution
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Name, r.Email, string(r.Role), r.IsVegetarian, r.AvatarURL, r.AgreedContribution,
	)
	if err != nil {
		return fmt.Errorf("failed to save roommate: %w", err)
	}
	return nil
}

// DeleteRoommate removes a roommate. Expenses and tasks that reference the ID are kept.
func (s *SQLiteStore) DeleteRoommate(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM roommates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete roommate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("roommate %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoommate(row scanner) (*models.Roommate, error) {
	var (
		r    models.Roommate
		role string
	)
	err := row.Scan(&r.ID, &r.Name, &r.Email, &role, &r.IsVegetarian, &r.AvatarURL, &r.AgreedContribution)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan roommate: %w", err)
	}
	r.Role = models.Role(role)
	return &r, nil
}
