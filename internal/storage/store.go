//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
)

var (
	// ErrNotFound is returned when a record or the session slot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when inserting an append-only record whose ID already exists.
	ErrConflict = errors.New("already exists")
)

// Store is the persistence capability used by the application controller.
// Every collection supports load-all and replace-all. Implementations decide how
// "replace" maps onto their storage; callers must not assume atomicity across
// collections.
type Store interface {
	Roommates(ctx context.Context) ([]models.Roommate, error)
	SaveRoommates(ctx context.Context, roommates []models.Roommate) error

	Expenses(ctx context.Context) ([]models.Expense, error)
	SaveExpenses(ctx context.Context, expenses []models.Expense) error

	Tasks(ctx context.Context) ([]models.Task, error)
	SaveTasks(ctx context.Context, tasks []models.Task) error

	Messages(ctx context.Context) ([]models.ChatMessage, error)
	SaveMessages(ctx context.Context, messages []models.ChatMessage) error

	// Budgets loads allocations and labels together.
	Budgets(ctx context.Context) (models.Budgets, error)
	// SaveBudgets replaces allocations and labels as a unit.
	SaveBudgets(ctx context.Context, budgets models.Budgets) error

	// Close releases any resources held by the store.
	Close() error
}

// SessionStore is the current-user slot. It is always backed by local storage.
type SessionStore interface {
	// CurrentSession returns ErrNotFound when nobody is logged in.
	CurrentSession(ctx context.Context) (models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// Authenticator is implemented by backends that need a credential for the logged-in
// roommate. The returned token is kept in the Session.
type Authenticator interface {
	Authenticate(ctx context.Context, roommateID string) (string, error)
}

// Repository is the record-level SQL storage behind the REST service.
// Its write semantics mirror the service endpoints: upsert for roommates and tasks,
// insert-only for expenses and messages, delete-and-reinsert for budgets and labels.
type Repository interface {
	ListRoommates(ctx context.Context) ([]models.Roommate, error)
	GetRoommate(ctx context.Context, id string) (*models.Roommate, error)
	UpsertRoommate(ctx context.Context, roommate *models.Roommate) error
	DeleteRoommate(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	UpsertTask(ctx context.Context, task *models.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, lastReminded *time.Time) error

	// ListMessages returns messages ordered by timestamp, oldest first.
	ListMessages(ctx context.Context) ([]models.ChatMessage, error)
	CreateMessage(ctx context.Context, message *models.ChatMessage) error

	Budgets(ctx context.Context) (map[string]float64, error)
	ReplaceBudgets(ctx context.Context, budgets map[string]float64) error
	BudgetLabels(ctx context.Context) (map[string]string, error)
	ReplaceBudgetLabels(ctx context.Context, labels map[string]string) error

	Close() error
}
