// Package transfer moves household data in and out of the application: JSON
// backups of every collection and the monthly CSV report.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/roomiesync/internal/models"
)

// ErrInvalidBackup is returned when a document is not a usable backup.
var ErrInvalidBackup = errors.New("invalid backup file format")

var validate = validator.New()

// Backup is the full-household document.
type Backup struct {
	Roommates    []models.Roommate    `json:"roommates" validate:"dive"`
	Expenses     []models.Expense     `json:"expenses"`
	Tasks        []models.Task        `json:"tasks"`
	Messages     []models.ChatMessage `json:"messages"`
	Budgets      map[string]float64   `json:"budgets"`
	BudgetLabels map[string]string    `json:"budgetLabels"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

// NewBackup assembles a backup of the given collections.
func NewBackup(
	roommates []models.Roommate,
	expenses []models.Expense,
	tasks []models.Task,
	messages []models.ChatMessage,
	budgets models.Budgets,
	exportedAt time.Time,
) Backup {
	b := Backup{
		Roommates:    roommates,
		Expenses:     expenses,
		Tasks:        tasks,
		Messages:     messages,
		Budgets:      budgets.Allocations,
		BudgetLabels: budgets.Labels,
		ExportedAt:   exportedAt.UTC(),
	}
	b.fillEmpty()
	return b
}

// Export writes b as indented JSON.
func Export(w io.Writer, b Backup) error {
	b.fillEmpty()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import reads a backup. The roommates collection must be present and be an array;
// any other missing collection is treated as empty.
func Import(r io.Reader) (Backup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Backup{}, fmt.Errorf("failed to read backup: %w", err)
	}

	var shape struct {
		Roommates json.RawMessage `json:"roommates"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(shape.Roommates), []byte("[")) {
		return Backup{}, fmt.Errorf("%w: roommates must be an array", ErrInvalidBackup)
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := validate.Struct(b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	b.fillEmpty()
	return b, nil
}

// Budget returns the allocations and labels as one value.
func (b Backup) Budget() models.Budgets {
	return models.Budgets{Allocations: b.Budgets, Labels: b.BudgetLabels}
}

func (b *Backup) fillEmpty() {
	if b.Roommates == nil {
		b.Roommates = []models.Roommate{}
	}
	if b.Expenses == nil {
		b.Expenses = []models.Expense{}
	}
	if b.Tasks == nil {
		b.Tasks = []models.Task{}
	}
	if b.Messages == nil {
		b.Messages = []models.ChatMessage{}
	}
	if b.Budgets == nil {
		b.Budgets = map[string]float64{}
	}
	if b.BudgetLabels == nil {
		b.BudgetLabels = map[string]string{}
	}
}

// BackupFileName is the suggested name for a backup taken at t.
func BackupFileName(t time.Time) string {
	return "RoomieSync_Backup_" + t.UTC().Format("2006-01-02") + ".json"
}
