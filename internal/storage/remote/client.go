// Package remote implements storage.Store against the RoomieSync REST service.
//
// The service exposes record-level writes, so replace-all is translated per
// collection: roommates are upserted and the missing ones deleted, tasks are
// upserted, expenses and messages are inserted when the server does not have them
// yet, and budgets and labels are replaced wholesale. Writes are not atomic across
// collections.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

var (
	_ storage.Store         = (*Client)(nil)
	_ storage.Authenticator = (*Client)(nil)
)

// Client talks to the REST service rooted at baseURL (e.g. http://localhost:3000/api).
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger

	mu    sync.RWMutex
	token string
}

// New creates a Client. Each request is bounded by timeout.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Authenticate requests a token for roommateID and uses it for later requests.
// The token is empty when the server runs without auth.
func (c *Client) Authenticate(ctx context.Context, roommateID string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/session", map[string]string{"roommateId": roommateID}, &resp); err != nil {
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

// Roommates lists the roommates.
func (c *Client) Roommates(ctx context.Context) ([]models.Roommate, error) {
	var roommates []models.Roommate
	if err := c.do(ctx, http.MethodGet, "/roommates", nil, &roommates); err != nil {
		return nil, fmt.Errorf("failed to load roommates: %w", err)
	}
	return roommates, nil
}

// SaveRoommates upserts every roommate and deletes the server's roommates that are
// not in the list.
func (c *Client) SaveRoommates(ctx context.Context, roommates []models.Roommate) error {
	current, err := c.Roommates(ctx)
	if err != nil {
		return err
	}
	for _, r := range roommates {
		if err := c.do(ctx, http.MethodPost, "/roommates", r, nil); err != nil {
			return fmt.Errorf("failed to save roommate %s: %w", r.ID, err)
		}
	}
	keep := lo.SliceToMap(roommates, func(r models.Roommate) (string, bool) { return r.ID, true })
	for _, r := range current {
		if keep[r.ID] {
			continue
		}
		err := c.do(ctx, http.MethodDelete, "/roommates/"+r.ID, nil, nil)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to delete roommate %s: %w", r.ID, err)
		}
		c.log.Debug("Roommate deleted remotely", "roommate_id", r.ID)
	}
	return nil
}

// Expenses lists the ledger.
func (c *Client) Expenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &expenses); err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

// SaveExpenses inserts every expense the server does not have yet, in list order.
func (c *Client) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	current, err := c.Expenses(ctx)
	if err != nil {
		return err
	}
	known := lo.SliceToMap(current, func(e models.Expense) (string, bool) { return e.ID, true })
	for _, e := range expenses {
		if known[e.ID] {
			continue
		}
		if err := c.do(ctx, http.MethodPost, "/expenses", e, nil); err != nil && !errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("failed to add expense %s: %w", e.ID, err)
		}
	}
	return nil
}

// Tasks lists the tasks.
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// taskUpdate is the body of PUT /tasks/{id}.
type taskUpdate struct {
	Status       models.TaskStatus `json:"status"`
	LastReminded *time.Time        `json:"lastReminded"`
}

// SaveTasks sends only what changed: new or edited tasks are upserted, and tasks whose
// status or reminder changed are updated in place. Tasks missing from the list are
// left on the server.
func (c *Client) SaveTasks(ctx context.Context, tasks []models.Task) error {
	current, err := c.Tasks(ctx)
	if err != nil {
		return err
	}
	byID := lo.KeyBy(current, func(t models.Task) string { return t.ID })

	for _, t := range tasks {
		old, ok := byID[t.ID]
		switch {
		case !ok || !sameDetails(old, t):
			err = c.do(ctx, http.MethodPost, "/tasks", t, nil)
		case old.Status != t.Status || !sameTime(old.LastReminded, t.LastReminded):
			err = c.do(ctx, http.MethodPut, "/tasks/"+t.ID, taskUpdate{Status: t.Status, LastReminded: t.LastReminded}, nil)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
	}
	return nil
}

func sameDetails(a, b models.Task) bool {
	return a.Title == b.Title &&
		a.AssignedTo == b.AssignedTo &&
		a.DueDate == b.DueDate &&
		a.Description == b.Description
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Messages lists the chat feed, oldest first.
func (c *Client) Messages(ctx context.Context) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &messages); err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return messages, nil
}

// SaveMessages inserts every message the server does not have yet.
func (c *Client) SaveMessages(ctx context.Context, messages []models.ChatMessage) error {
	current, err := c.Messages(ctx)
	if err != nil {
		return err
	}
	known := lo.SliceToMap(current, func(m models.ChatMessage) (string, bool) { return m.ID, true })
	for _, m := range messages {
		if known[m.ID] {
			continue
		}
		if err := c.do(ctx, http.MethodPost, "/messages", m, nil); err != nil && !errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("failed to send message %s: %w", m.ID, err)
		}
	}
	return nil
}

// Budgets loads allocations and labels.
func (c *Client) Budgets(ctx context.Context) (models.Budgets, error) {
	budgets := models.NewBudgets()
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, &budgets.Allocations); err != nil {
		return models.Budgets{}, fmt.Errorf("failed to load budgets: %w", err)
	}
	if err := c.do(ctx, http.MethodGet, "/budget_labels", nil, &budgets.Labels); err != nil {
		return models.Budgets{}, fmt.Errorf("failed to load budget labels: %w", err)
	}
	if budgets.Allocations == nil {
		budgets.Allocations = map[string]float64{}
	}
	if budgets.Labels == nil {
		budgets.Labels = map[string]string{}
	}
	return budgets, nil
}

// SaveBudgets replaces allocations, then labels.
func (c *Client) SaveBudgets(ctx context.Context, budgets models.Budgets) error {
	allocations := budgets.Allocations
	if allocations == nil {
		allocations = map[string]float64{}
	}
	labels := budgets.Labels
	if labels == nil {
		labels = map[string]string{}
	}
	if err := c.do(ctx, http.MethodPost, "/budgets", allocations, nil); err != nil {
		return fmt.Errorf("failed to save budgets: %w", err)
	}
	if err := c.do(ctx, http.MethodPost, "/budget_labels", labels, nil); err != nil {
		return fmt.Errorf("failed to save budget labels: %w", err)
	}
	return nil
}

// apiError is the error body returned by the service.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.log.Debug("API request", "method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return statusError(resp.StatusCode, apiErr.Error)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// ErrUnauthorized is returned when the service rejects the bearer token.
var ErrUnauthorized = errors.New("unauthorized")

func statusError(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, storage.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, storage.ErrConflict)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, ErrUnauthorized)
	default:
		return fmt.Errorf("api error (%d): %s", code, msg)
	}
}
