package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mmynk/roomiesync/internal/assistant"
	"github.com/mmynk/roomiesync/internal/models"
)

// NewExpense is the input of AddExpense.
type NewExpense struct {
	Title    string
	Amount   float64
	PaidBy   string
	Category string

	// Date defaults to now.
	Date time.Time

	// SplitAmong defaults to DefaultSplit(Category). Contributions always carry
	// only the payer.
	SplitAmong []string
}

// AddExpense appends an expense to the ledger.
func (c *Controller) AddExpense(ctx context.Context, s State, in NewExpense) (State, error) {
	e := models.Expense{
		ID:         c.newID(),
		Title:      strings.TrimSpace(in.Title),
		Amount:     in.Amount,
		PaidBy:     in.PaidBy,
		Category:   strings.TrimSpace(in.Category),
		Date:       in.Date,
		SplitAmong: slices.Clone(in.SplitAmong),
	}
	if e.Date.IsZero() {
		e.Date = c.now()
	}
	if e.IsContribution() {
		e.SplitAmong = []string{e.PaidBy}
	} else if len(e.SplitAmong) == 0 {
		e.SplitAmong = c.DefaultSplit(s, e.Category)
	}
	if err := validate.Struct(e); err != nil {
		return s, validationError(err)
	}
	if _, ok := s.Roommate(e.PaidBy); !ok {
		return s, fmt.Errorf("%w: payer %s", ErrUnknownRoommate, e.PaidBy)
	}
	if missing, ok := lo.Find(e.SplitAmong, func(id string) bool {
		_, ok := s.Roommate(id)
		return !ok
	}); ok {
		return s, fmt.Errorf("%w: split member %s", ErrUnknownRoommate, missing)
	}
	e.SplitAmong = lo.Uniq(e.SplitAmong)

	expenses := append(slices.Clone(s.Expenses), e)
	if err := c.store.SaveExpenses(ctx, expenses); err != nil {
		return s, fmt.Errorf("failed to save expenses: %w", err)
	}

	next := s.clone()
	next.Expenses = expenses
	c.log.Info("Expense added",
		"expense_id", e.ID,
		"category", e.Category,
		"amount", e.Amount,
		"paid_by", e.PaidBy,
	)
	return next, nil
}

// CollectContribution records a payment into the pool. A zero amount uses the
// payer's agreed contribution. Admin only.
func (c *Controller) CollectContribution(ctx context.Context, s State, payerID string, amount float64) (State, error) {
	if err := c.requireAdmin(s); err != nil {
		return s, err
	}
	payer, ok := s.Roommate(payerID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownRoommate, payerID)
	}
	if amount == 0 {
		amount = payer.AgreedContribution
	}
	return c.AddExpense(ctx, s, NewExpense{
		Title:    models.ContributionTitle,
		Amount:   amount,
		PaidBy:   payer.ID,
		Category: models.CategoryContribution,
	})
}

// DefaultSplit is the split proposed for a new expense: every roommate, minus the
// vegetarians for Non-Veg.
func (c *Controller) DefaultSplit(s State, category string) []string {
	members := s.Roommates
	if category == models.CategoryNonVeg {
		members = lo.Filter(members, func(r models.Roommate, _ int) bool { return !r.IsVegetarian })
	}
	return lo.Map(members, func(r models.Roommate, _ int) string { return r.ID })
}

// ParseExpense asks the assistant to turn free text into an expense draft.
func (c *Controller) ParseExpense(ctx context.Context, text string) (*assistant.ParsedExpense, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	parsed, err := c.assistant.ParseExpense(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := parsed.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return parsed, nil
}
