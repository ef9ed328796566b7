//go:generate go run go.uber.org/mock/mockgen -source=assistant.go -destination=../mocks/mock_assistant.go -package=mocks

// Package assistant wraps the generative-AI collaborator used to parse free-text
// expenses and to write task reminders.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/roomiesync/internal/models"
)

// FallbackReminder is sent when no reminder could be generated.
const FallbackReminder = "Hey, just a reminder to complete your task!"

// ErrDisabled is returned by ParseExpense when no assistant is configured.
var ErrDisabled = errors.New("assistant is not configured")

// ParsedExpense is the structured result of parsing a free-text expense.
type ParsedExpense struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// Assistant is the AI collaborator.
type Assistant interface {
	// ParseExpense extracts an expense from text like "paid 450 for veggies".
	ParseExpense(ctx context.Context, text string) (*ParsedExpense, error)

	// ReminderMessage writes a reminder for an overdue task. It never fails;
	// FallbackReminder is returned when generation is unavailable.
	ReminderMessage(ctx context.Context, taskTitle, assignee string, daysOverdue int) string
}

// Disabled is used when no API key is configured.
type Disabled struct{}

var _ Assistant = Disabled{}

// ParseExpense always returns ErrDisabled.
func (Disabled) ParseExpense(context.Context, string) (*ParsedExpense, error) {
	return nil, ErrDisabled
}

// ReminderMessage always returns FallbackReminder.
func (Disabled) ReminderMessage(context.Context, string, string, int) string {
	return FallbackReminder
}

// Normalize trims the parsed fields, maps unknown categories to Other and rejects
// results without a usable amount.
func (p *ParsedExpense) Normalize() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	if !models.IsKnownCategory(p.Category) || p.Category == models.CategoryContribution {
		p.Category = models.CategoryOther
	}
	if p.Amount <= 0 {
		return fmt.Errorf("no amount found in text")
	}
	if p.Title == "" {
		p.Title = p.Category
	}
	return nil
}
