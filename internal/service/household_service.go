// Package service implements the RoomieSync REST API on top of storage.Repository.
package service

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/roomiesync/internal/middleware"
	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

// HouseholdService serves the household collections.
type HouseholdService struct {
	repo storage.Repository

	// enforceRoles is set when requests carry authenticated claims.
	enforceRoles bool
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(repo storage.Repository, enforceRoles bool) *HouseholdService {
	return &HouseholdService{repo: repo, enforceRoles: enforceRoles}
}

func (s *HouseholdService) requireAdmin(r *http.Request) error {
	if !s.enforceRoles {
		return nil
	}
	if middleware.GetRole(r.Context()) != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func saved(w http.ResponseWriter, what string) {
	WriteJSON(w, map[string]string{"message": what + " saved"}, http.StatusOK)
}

// ListRoommates handles GET /api/roommates.
func (s *HouseholdService) ListRoommates(w http.ResponseWriter, r *http.Request) error {
	roommates, err := s.repo.ListRoommates(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, roommates, http.StatusOK)
	return nil
}

// SaveRoommate handles POST /api/roommates. It inserts or replaces one roommate.
func (s *HouseholdService) SaveRoommate(w http.ResponseWriter, r *http.Request) error {
	if err := s.requireAdmin(r); err != nil {
		return err
	}
	roommate, err := DecodeValid[models.Roommate](r)
	if err != nil {
		return err
	}
	if err := s.repo.UpsertRoommate(r.Context(), &roommate); err != nil {
		return err
	}
	slog.Info("Roommate saved", "roommate_id", roommate.ID, "role", roommate.Role)
	saved(w, "Roommate")
	return nil
}

// DeleteRoommate handles DELETE /api/roommates/{id}.
func (s *HouseholdService) DeleteRoommate(w http.ResponseWriter, r *http.Request) error {
	if err := s.requireAdmin(r); err != nil {
		return err
	}
	id := r.PathValue("id")
	if s.enforceRoles && id == middleware.GetRoommateID(r.Context()) {
		return fmt.Errorf("%w: cannot delete yourself", ErrBadRequest)
	}
	if err := s.repo.DeleteRoommate(r.Context(), id); err != nil {
		return err
	}
	slog.Info("Roommate deleted", "roommate_id", id)
	WriteJSON(w, map[string]string{"message": "Roommate deleted"}, http.StatusOK)
	return nil
}

// ListExpenses handles GET /api/expenses.
func (s *HouseholdService) ListExpenses(w http.ResponseWriter, r *http.Request) error {
	expenses, err := s.repo.ListExpenses(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, expenses, http.StatusOK)
	return nil
}

// CreateExpense handles POST /api/expenses. An expense ID can be inserted only once.
func (s *HouseholdService) CreateExpense(w http.ResponseWriter, r *http.Request) error {
	expense, err := DecodeValid[models.Expense](r)
	if err != nil {
		return err
	}
	if err := s.repo.CreateExpense(r.Context(), &expense); err != nil {
		return err
	}
	slog.Info("Expense added",
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount,
	)
	WriteJSON(w, map[string]string{"message": "Expense added"}, http.StatusCreated)
	return nil
}

// ListTasks handles GET /api/tasks.
func (s *HouseholdService) ListTasks(w http.ResponseWriter, r *http.Request) error {
	tasks, err := s.repo.ListTasks(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, tasks, http.StatusOK)
	return nil
}

// SaveTask handles POST /api/tasks.
func (s *HouseholdService) SaveTask(w http.ResponseWriter, r *http.Request) error {
	task, err := DecodeValid[models.Task](r)
	if err != nil {
		return err
	}
	if err := s.repo.UpsertTask(r.Context(), &task); err != nil {
		return err
	}
	saved(w, "Task")
	return nil
}

// TaskUpdate is the body of PUT /api/tasks/{id}.
type TaskUpdate struct {
	Status       models.TaskStatus `json:"status" validate:"required,oneof=PENDING COMPLETED"`
	LastReminded *time.Time        `json:"lastReminded"`
}

// UpdateTask handles PUT /api/tasks/{id}.
func (s *HouseholdService) UpdateTask(w http.ResponseWriter, r *http.Request) error {
	update, err := DecodeValid[TaskUpdate](r)
	if err != nil {
		return err
	}
	id := r.PathValue("id")
	if err := s.repo.UpdateTaskStatus(r.Context(), id, update.Status, update.LastReminded); err != nil {
		return err
	}
	WriteJSON(w, map[string]string{"message": "Task updated"}, http.StatusOK)
	return nil
}

// ListMessages handles GET /api/messages.
func (s *HouseholdService) ListMessages(w http.ResponseWriter, r *http.Request) error {
	messages, err := s.repo.ListMessages(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, messages, http.StatusOK)
	return nil
}

// CreateMessage handles POST /api/messages.
func (s *HouseholdService) CreateMessage(w http.ResponseWriter, r *http.Request) error {
	message, err := DecodeValid[models.ChatMessage](r)
	if err != nil {
		return err
	}
	if err := s.repo.CreateMessage(r.Context(), &message); err != nil {
		return err
	}
	WriteJSON(w, map[string]string{"message": "Message sent"}, http.StatusCreated)
	return nil
}

// ListBudgets handles GET /api/budgets.
func (s *HouseholdService) ListBudgets(w http.ResponseWriter, r *http.Request) error {
	budgets, err := s.repo.Budgets(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, budgets, http.StatusOK)
	return nil
}

// ReplaceBudgets handles POST /api/budgets. The body replaces every allocation.
func (s *HouseholdService) ReplaceBudgets(w http.ResponseWriter, r *http.Request) error {
	if err := s.requireAdmin(r); err != nil {
		return err
	}
	budgets, err := Decode[map[string]float64](r)
	if err != nil {
		return err
	}
	for category, amount := range budgets {
		if amount < 0 {
			return fmt.Errorf("%w: negative budget for %s", ErrBadRequest, category)
		}
	}
	if err := s.repo.ReplaceBudgets(r.Context(), budgets); err != nil {
		return err
	}
	saved(w, "Budgets")
	return nil
}

// ListBudgetLabels handles GET /api/budget_labels.
func (s *HouseholdService) ListBudgetLabels(w http.ResponseWriter, r *http.Request) error {
	labels, err := s.repo.BudgetLabels(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, labels, http.StatusOK)
	return nil
}

// ReplaceBudgetLabels handles POST /api/budget_labels.
func (s *HouseholdService) ReplaceBudgetLabels(w http.ResponseWriter, r *http.Request) error {
	if err := s.requireAdmin(r); err != nil {
		return err
	}
	labels, err := Decode[map[string]string](r)
	if err != nil {
		return err
	}
	if err := s.repo.ReplaceBudgetLabels(r.Context(), labels); err != nil {
		return err
	}
	saved(w, "Labels")
	return nil
}
