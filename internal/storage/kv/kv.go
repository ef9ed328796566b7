// Package kv provides a local, durable implementation of storage.Store and
// storage.SessionStore on top of BadgerDB.
//
// Each collection is one JSON document under a fixed key, so replace-all is a single
// write and load-all a single read.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

var (
	_ storage.Store        = (*Store)(nil)
	_ storage.SessionStore = (*Store)(nil)
)

// Keys of the stored documents.
const (
	KeyRoommates    = "roomiesync_roommates"
	KeyExpenses     = "roomiesync_expenses"
	KeyTasks        = "roomiesync_tasks"
	KeyMessages     = "roomiesync_messages"
	KeyBudgets      = "roomiesync_budgets"
	KeyBudgetLabels = "roomiesync_budget_labels"
	KeyCurrentUser  = "roomiesync_current_user"
)

// Store implements storage.Store and storage.SessionStore using BadgerDB.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// Open opens (or creates) the database in dir.
func Open(dir string, log *slog.Logger) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", dir, err)
	}
	return New(db, log), nil
}

// New wraps an already opened database.
func New(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Roommates returns the stored roommates. On first run the example profiles are
// stored and returned.
func (s *Store) Roommates(ctx context.Context) ([]models.Roommate, error) {
	var roommates []models.Roommate
	err := s.get(KeyRoommates, &roommates)
	if errors.Is(err, storage.ErrNotFound) {
		seed := models.SeedRoommates()
		if err := s.put(KeyRoommates, seed); err != nil {
			return nil, fmt.Errorf("failed to seed roommates: %w", err)
		}
		s.log.Info("Seeded roommates", "count", len(seed))
		return seed, nil
	}
	if err != nil {
		return nil, err
	}
	return roommates, nil
}

// SaveRoommates replaces the stored roommates.
func (s *Store) SaveRoommates(ctx context.Context, roommates []models.Roommate) error {
	return s.put(KeyRoommates, roommates)
}

// Expenses returns the stored ledger, empty if nothing was saved yet.
func (s *Store) Expenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.getOrEmpty(KeyExpenses, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// SaveExpenses replaces the stored ledger.
func (s *Store) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	return s.put(KeyExpenses, expenses)
}

// Tasks returns the stored tasks.
func (s *Store) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.getOrEmpty(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveTasks replaces the stored tasks.
func (s *Store) SaveTasks(ctx context.Context, tasks []models.Task) error {
	return s.put(KeyTasks, tasks)
}

// Messages returns the stored chat feed.
func (s *Store) Messages(ctx context.Context) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.getOrEmpty(KeyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveMessages replaces the stored chat feed.
func (s *Store) SaveMessages(ctx context.Context, messages []models.ChatMessage) error {
	return s.put(KeyMessages, messages)
}

// Budgets returns allocations and labels; missing documents yield empty maps.
func (s *Store) Budgets(ctx context.Context) (models.Budgets, error) {
	budgets := models.NewBudgets()
	if err := s.getOrEmpty(KeyBudgets, &budgets.Allocations); err != nil {
		return models.Budgets{}, err
	}
	if err := s.getOrEmpty(KeyBudgetLabels, &budgets.Labels); err != nil {
		return models.Budgets{}, err
	}
	if budgets.Allocations == nil {
		budgets.Allocations = map[string]float64{}
	}
	if budgets.Labels == nil {
		budgets.Labels = map[string]string{}
	}
	return budgets, nil
}

// SaveBudgets writes allocations and labels in one transaction.
func (s *Store) SaveBudgets(ctx context.Context, budgets models.Budgets) error {
	allocations, err := json.Marshal(nonNil(budgets.Allocations))
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	labels, err := json.Marshal(nonNil(budgets.Labels))
	if err != nil {
		return fmt.Errorf("failed to encode budget labels: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(KeyBudgets), allocations); err != nil {
			return err
		}
		return txn.Set([]byte(KeyBudgetLabels), labels)
	})
}

// CurrentSession returns the logged-in session or storage.ErrNotFound.
func (s *Store) CurrentSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	if err := s.get(KeyCurrentUser, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// SaveSession stores the current session.
func (s *Store) SaveSession(ctx context.Context, session models.Session) error {
	return s.put(KeyCurrentUser, session)
}

// ClearSession removes the current session. Clearing an empty slot is not an error.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(KeyCurrentUser))
	})
}

func (s *Store) get(key string, v any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return nil
}

func (s *Store) getOrEmpty(key string, v any) error {
	if err := s.get(key, v); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Store) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func nonNil[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return M{}
	}
	return m
}
