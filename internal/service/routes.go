package service

import (
	"net/http"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/middleware"
	"github.com/mmynk/roomiesync/internal/storage"
)

// Options configures NewHandler.
type Options struct {
	// JWTManager enables bearer-token auth when non-nil.
	JWTManager *auth.JWTManager

	// Metrics instruments every API route when non-nil.
	Metrics *middleware.Metrics
}

// NewHandler registers the REST API on a new mux and returns it wrapped with the
// auth middleware when enabled.
func NewHandler(repo storage.Repository, opts Options) http.Handler {
	household := NewHouseholdService(repo, opts.JWTManager != nil)
	session := NewSessionService(repo, opts.JWTManager)

	mux := http.NewServeMux()
	handle := func(pattern string, fn HandlerFunc) {
		var h http.Handler = Wrap(fn)
		if opts.Metrics != nil {
			h = opts.Metrics.Instrument(pattern, h)
		}
		mux.Handle(pattern, h)
	}

	handle("GET /api/roommates", household.ListRoommates)
	handle("POST /api/roommates", household.SaveRoommate)
	handle("DELETE /api/roommates/{id}", household.DeleteRoommate)

	handle("GET /api/expenses", household.ListExpenses)
	handle("POST /api/expenses", household.CreateExpense)

	handle("GET /api/tasks", household.ListTasks)
	handle("POST /api/tasks", household.SaveTask)
	handle("PUT /api/tasks/{id}", household.UpdateTask)

	handle("GET /api/messages", household.ListMessages)
	handle("POST /api/messages", household.CreateMessage)

	handle("GET /api/budgets", household.ListBudgets)
	handle("POST /api/budgets", household.ReplaceBudgets)
	handle("GET /api/budget_labels", household.ListBudgetLabels)
	handle("POST /api/budget_labels", household.ReplaceBudgetLabels)

	handle("POST /api/session", session.Create)

	if opts.JWTManager == nil {
		return mux
	}
	return middleware.RequireAuth(opts.JWTManager, isPublic, WriteError)(mux)
}

// isPublic reports whether r may be served without a token. The roommate list is
// public so a client can offer a profile to log in as.
func isPublic(r *http.Request) bool {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/roommates":
		return true
	case r.Method == http.MethodPost && r.URL.Path == "/api/session":
		return true
	}
	return false
}
