package app

import (
	"maps"
	"slices"

	"github.com/mmynk/roomiesync/internal/models"
)

// State is the household snapshot owned by the caller. Actions never modify the
// State they receive; they return a new one.
type State struct {
	// CurrentUser is nil when nobody is logged in.
	CurrentUser *models.Roommate
	Roommates   []models.Roommate
	Expenses    []models.Expense
	Tasks       []models.Task
	Messages    []models.ChatMessage
	Budgets     models.Budgets
}

// LoggedIn reports whether a roommate is logged in.
func (s State) LoggedIn() bool {
	return s.CurrentUser != nil
}

// IsAdmin reports whether the current user is an admin.
func (s State) IsAdmin() bool {
	return s.CurrentUser != nil && s.CurrentUser.IsAdmin()
}

// SenderID is the current user's ID, or models.SystemSender when nobody is logged in.
func (s State) SenderID() string {
	if s.CurrentUser == nil {
		return models.SystemSender
	}
	return s.CurrentUser.ID
}

// Roommate looks up a roommate by ID.
func (s State) Roommate(id string) (models.Roommate, bool) {
	return models.FindRoommate(s.Roommates, id)
}

// Task looks up a task by ID.
func (s State) Task(id string) (models.Task, bool) {
	i := slices.IndexFunc(s.Tasks, func(t models.Task) bool { return t.ID == id })
	if i < 0 {
		return models.Task{}, false
	}
	return s.Tasks[i], true
}

// RoommateName returns the display name for id, "System" for the system sender and
// "Unknown" for a missing roommate.
func (s State) RoommateName(id string) string {
	if id == models.SystemSender {
		return "System"
	}
	if r, ok := s.Roommate(id); ok {
		return r.Name
	}
	return "Unknown"
}

// clone returns a copy whose slices and maps can be changed without affecting s.
func (s State) clone() State {
	c := s
	c.Roommates = slices.Clone(s.Roommates)
	c.Expenses = slices.Clone(s.Expenses)
	c.Tasks = slices.Clone(s.Tasks)
	c.Messages = slices.Clone(s.Messages)
	c.Budgets = models.Budgets{
		Allocations: maps.Clone(s.Budgets.Allocations),
		Labels:      maps.Clone(s.Budgets.Labels),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		c.CurrentUser = &u
	}
	return c
}
