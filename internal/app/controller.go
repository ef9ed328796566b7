// Package app holds the application controller: it loads the household snapshot,
// applies user actions to it and persists the result through storage.Store.
//
// Every action takes a State and returns the next one. The returned State reflects
// what was persisted; when a save fails the action returns the previous State (or
// the last one that was fully saved) together with the error.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmynk/roomiesync/internal/assistant"
	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

var validate = validator.New()

// Controller applies user actions to a State.
type Controller struct {
	store     storage.Store
	sessions  storage.SessionStore
	assistant assistant.Assistant
	log       *slog.Logger

	now   func() time.Time
	newID func() string
	loc   *time.Location
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator sets the ID source for new records.
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithLocation sets the zone used to interpret task due dates.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.loc = loc }
}

// NewController creates a Controller. A nil assistant is replaced by assistant.Disabled.
func NewController(store storage.Store, sessions storage.SessionStore, ai assistant.Assistant, log *slog.Logger, opts ...Option) *Controller {
	if ai == nil {
		ai = assistant.Disabled{}
	}
	c := &Controller{
		store:     store,
		sessions:  sessions,
		assistant: ai,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the controller's current time.
func (c *Controller) Now() time.Time {
	return c.now()
}

// Location returns the zone used for due dates and monthly reports.
func (c *Controller) Location() *time.Location {
	return c.loc
}

// Load reads every collection and the current session. A collection that fails to
// load is logged and left empty so the household stays usable.
func (c *Controller) Load(ctx context.Context) State {
	var s State

	roommates, err := c.store.Roommates(ctx)
	if err != nil {
		c.log.Error("Failed to load roommates", "error", err)
	}
	s.Roommates = roommates

	expenses, err := c.store.Expenses(ctx)
	if err != nil {
		c.log.Error("Failed to load expenses", "error", err)
	}
	s.Expenses = expenses

	tasks, err := c.store.Tasks(ctx)
	if err != nil {
		c.log.Error("Failed to load tasks", "error", err)
	}
	s.Tasks = tasks

	messages, err := c.store.Messages(ctx)
	if err != nil {
		c.log.Error("Failed to load messages", "error", err)
	}
	s.Messages = messages

	budgets, err := c.store.Budgets(ctx)
	if err != nil {
		c.log.Error("Failed to load budgets", "error", err)
		budgets = models.NewBudgets()
	}
	s.Budgets = budgets

	session, err := c.sessions.CurrentSession(ctx)
	switch {
	case err == nil:
		user := session.User
		// the stored copy may be stale; prefer the live profile
		if live, ok := s.Roommate(user.ID); ok {
			user = live
		}
		s.CurrentUser = &user
	case !isNotFound(err):
		c.log.Error("Failed to load session", "error", err)
	}

	c.log.Debug("State loaded",
		"roommates", len(s.Roommates),
		"expenses", len(s.Expenses),
		"tasks", len(s.Tasks),
		"messages", len(s.Messages),
		"logged_in", s.LoggedIn(),
	)
	return s
}

func (c *Controller) requireLogin(s State) error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

func (c *Controller) requireAdmin(s State) error {
	if err := c.requireLogin(s); err != nil {
		return err
	}
	if !s.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
