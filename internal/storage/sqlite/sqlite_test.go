package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Roommates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("New database is seeded", func(t *testing.T) {
		roommates, err := store.ListRoommates(ctx)
		if err != nil {
			t.Fatalf("ListRoommates failed: %v", err)
		}
		if len(roommates) != 3 {
			t.Fatalf("Expected 3 seeded roommates, got %d", len(roommates))
		}
		if roommates[0].Name != "Admin Alice" || !roommates[0].IsAdmin() {
			t.Errorf("Unexpected first roommate: %+v", roommates[0])
		}
		if !roommates[1].IsVegetarian {
			t.Errorf("Expected Bob to be vegetarian")
		}
	})

	t.Run("Upsert inserts then updates", func(t *testing.T) {
		dana := &models.Roommate{ID: "4", Name: "Dana", Role: models.RoleMember, AgreedContribution: 5000}
		if err := store.UpsertRoommate(ctx, dana); err != nil {
			t.Fatalf("UpsertRoommate failed: %v", err)
		}

		dana.Name = "Dana Doe"
		dana.IsVegetarian = true
		if err := store.UpsertRoommate(ctx, dana); err != nil {
			t.Fatalf("UpsertRoommate failed: %v", err)
		}

		got, err := store.GetRoommate(ctx, "4")
		if err != nil {
			t.Fatalf("GetRoommate failed: %v", err)
		}
		if got.Name != "Dana Doe" || !got.IsVegetarian || got.AgreedContribution != 5000 {
			t.Errorf("Unexpected roommate after upsert: %+v", got)
		}

		roommates, _ := store.ListRoommates(ctx)
		if len(roommates) != 4 {
			t.Errorf("Expected 4 roommates, got %d", len(roommates))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.DeleteRoommate(ctx, "4"); err != nil {
			t.Fatalf("DeleteRoommate failed: %v", err)
		}
		_, err := store.GetRoommate(ctx, "4")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteRoommate(ctx, "4"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
		}
	})
}

func TestSQLiteStore_Expenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)

	rent := &models.Expense{
		ID: "e1", Title: "March rent", Amount: 9000, PaidBy: "1",
		Category: models.CategoryRent, Date: date, SplitAmong: []string{"1", "2", "3"},
	}
	if err := store.CreateExpense(ctx, rent); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	t.Run("Duplicate ID conflicts", func(t *testing.T) {
		err := store.CreateExpense(ctx, rent)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("Nil split is stored as empty", func(t *testing.T) {
		e := &models.Expense{ID: "e0", Title: "Bulbs", Amount: 120, PaidBy: "2", Category: models.CategoryOther, Date: date.Add(-time.Hour)}
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	})

	expenses, err := store.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(expenses))
	}
	// ordered by date
	if expenses[0].ID != "e0" {
		t.Errorf("Expected earliest expense first, got %s", expenses[0].ID)
	}
	if len(expenses[0].SplitAmong) != 0 {
		t.Errorf("Expected empty split, got %v", expenses[0].SplitAmong)
	}
	got := expenses[1]
	if !got.Date.Equal(date) {
		t.Errorf("Date mismatch: got %v, want %v", got.Date, date)
	}
	if got.Amount != 9000 || got.Category != models.CategoryRent || len(got.SplitAmong) != 3 {
		t.Errorf("Unexpected expense: %+v", got)
	}
}

func TestSQLiteStore_Tasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := &models.Task{ID: "t1", Title: "Take out trash", AssignedTo: "2", DueDate: "2025-03-12", Status: models.TaskPending}
	if err := store.UpsertTask(ctx, task); err != nil {
		t.Fatalf("UpsertTask failed: %v", err)
	}

	reminded := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	if err := store.UpdateTaskStatus(ctx, "t1", models.TaskPending, &reminded); err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}

	t.Run("Upsert without reminder keeps stored reminder", func(t *testing.T) {
		task.Status = models.TaskCompleted
		if err := store.UpsertTask(ctx, task); err != nil {
			t.Fatalf("UpsertTask failed: %v", err)
		}
		tasks, err := store.ListTasks(ctx)
		if err != nil {
			t.Fatalf("ListTasks failed: %v", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("Expected 1 task, got %d", len(tasks))
		}
		if tasks[0].Status != models.TaskCompleted {
			t.Errorf("Expected COMPLETED, got %s", tasks[0].Status)
		}
		if tasks[0].LastReminded == nil || !tasks[0].LastReminded.Equal(reminded) {
			t.Errorf("Expected reminder %v to be kept, got %v", reminded, tasks[0].LastReminded)
		}
	})

	t.Run("Update unknown task", func(t *testing.T) {
		err := store.UpdateTaskStatus(ctx, "missing", models.TaskCompleted, nil)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_Messages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	snap := &models.TaskSnapshot{TaskID: "t1", Title: "Dishes", Status: models.TaskPending}
	later := &models.ChatMessage{ID: "m2", SenderID: "1", Content: `Assigned task "Dishes" to Bob Builder`, Timestamp: base.Add(time.Minute), Type: models.MessageTaskAssigned, TaskSnapshot: snap}
	earlier := &models.ChatMessage{ID: "m1", SenderID: "2", Content: "hi all", Timestamp: base, Type: models.MessageText}

	for _, m := range []*models.ChatMessage{later, earlier} {
		if err := store.CreateMessage(ctx, m); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}
	if err := store.CreateMessage(ctx, earlier); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}

	messages, err := store.ListMessages(ctx)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].ID != "m1" || messages[1].ID != "m2" {
		t.Errorf("Expected messages ordered by timestamp, got %s, %s", messages[0].ID, messages[1].ID)
	}
	if messages[0].TaskSnapshot != nil {
		t.Errorf("Expected no snapshot on text message")
	}
	if messages[1].TaskSnapshot == nil || *messages[1].TaskSnapshot != *snap {
		t.Errorf("Snapshot mismatch: got %+v, want %+v", messages[1].TaskSnapshot, snap)
	}
}

func TestSQLiteStore_Budgets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceBudgets(ctx, map[string]float64{"Rent": 18000, "Grocery": 4000}); err != nil {
		t.Fatalf("ReplaceBudgets failed: %v", err)
	}
	if err := store.ReplaceBudgets(ctx, map[string]float64{"Grocery": 5000, "Custom-1": 800}); err != nil {
		t.Fatalf("ReplaceBudgets failed: %v", err)
	}
	budgets, err := store.Budgets(ctx)
	if err != nil {
		t.Fatalf("Budgets failed: %v", err)
	}
	if len(budgets) != 2 || budgets["Grocery"] != 5000 || budgets["Custom-1"] != 800 {
		t.Errorf("Expected replaced budgets, got %v", budgets)
	}

	if err := store.ReplaceBudgetLabels(ctx, map[string]string{"Custom-1": "Internet"}); err != nil {
		t.Fatalf("ReplaceBudgetLabels failed: %v", err)
	}
	if err := store.ReplaceBudgetLabels(ctx, map[string]string{}); err != nil {
		t.Fatalf("ReplaceBudgetLabels failed: %v", err)
	}
	labels, err := store.BudgetLabels(ctx)
	if err != nil {
		t.Fatalf("BudgetLabels failed: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("Expected labels to be cleared, got %v", labels)
	}
}
