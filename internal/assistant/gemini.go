package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/mmynk/roomiesync/internal/models"
)

const (
	expenseInstruction = "You are a financial assistant. Extract accurate expense details. " +
		"If no currency is specified, assume standard units."
	maxReminderWords = 50
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements Assistant with the Gemini API.
type Gemini struct {
	models contentGenerator
	model  string
	log    *slog.Logger
}

var _ Assistant = (*Gemini)(nil)

// NewGemini creates a Gemini assistant using apiKey.
func NewGemini(ctx context.Context, apiKey, model string, log *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{models: client.Models, model: model, log: log}, nil
}

// New returns a Gemini assistant when apiKey is set and Disabled otherwise.
func New(ctx context.Context, apiKey, model string, log *slog.Logger) (Assistant, error) {
	if apiKey == "" {
		return Disabled{}, nil
	}
	return NewGemini(ctx, apiKey, model, log)
}

func expenseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Short description of the expense",
			},
			"amount": {
				Type:        genai.TypeNumber,
				Description: "Total cost found in text",
			},
			"category": {
				Type:        genai.TypeString,
				Enum:        models.StandardCategories,
				Description: "Best fitting category",
			},
		},
		Required: []string{"title", "amount", "category"},
	}
}

// ParseExpense asks Gemini for a JSON expense matching the expense schema.
func (g *Gemini) ParseExpense(ctx context.Context, text string) (*ParsedExpense, error) {
	prompt := fmt.Sprintf("Extract expense details from this text: %q", text)
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    expenseSchema(),
		SystemInstruction: genai.NewContentFromText(expenseInstruction, genai.RoleUser),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse expense: %w", err)
	}

	var parsed ParsedExpense
	if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parsed expense: %w", err)
	}
	if err := parsed.Normalize(); err != nil {
		return nil, err
	}
	g.log.Debug("Expense parsed", "title", parsed.Title, "amount", parsed.Amount, "category", parsed.Category)
	return &parsed, nil
}

// ReminderMessage asks Gemini for a short reminder. Failures are logged and the
// fallback text is returned.
func (g *Gemini) ReminderMessage(ctx context.Context, taskTitle, assignee string, daysOverdue int) string {
	prompt := fmt.Sprintf(
		"Write a polite but firm reminder message for %s regarding the task %q which is %d days overdue. Keep it under %d words.",
		assignee, taskTitle, daysOverdue, maxReminderWords,
	)
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.Warn("Reminder generation failed", "task", taskTitle, "error", err)
		return FallbackReminder
	}
	msg := strings.TrimSpace(resp.Text())
	if msg == "" {
		return FallbackReminder
	}
	return msg
}
