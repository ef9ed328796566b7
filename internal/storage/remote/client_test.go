package remote

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/service"
	"github.com/mmynk/roomiesync/internal/storage"
	"github.com/mmynk/roomiesync/internal/storage/sqlite"
)

// requestLog records the method and path of each request reaching the service.
type requestLog struct {
	mu   sync.Mutex
	seen []string
}

func (l *requestLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.seen = append(l.seen, r.Method+" "+r.URL.Path)
		l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (l *requestLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = nil
}

func (l *requestLog) count(entry string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, s := range l.seen {
		if s == entry {
			n++
		}
	}
	return n
}

func setupClient(t *testing.T, opts service.Options) (*Client, *requestLog) {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	log := &requestLog{}
	server := httptest.NewServer(log.wrap(service.NewHandler(repo, opts)))
	t.Cleanup(func() {
		server.Close()
		repo.Close()
	})

	client := New(server.URL+"/api", 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = client.Close() })
	return client, log
}

func TestClient_Roommates(t *testing.T) {
	req := require.New(t)
	client, _ := setupClient(t, service.Options{})
	ctx := context.Background()

	roommates, err := client.Roommates(ctx)
	req.NoError(err)
	req.Len(roommates, 3)

	// drop Charlie, add Dana
	dana := models.Roommate{ID: "4", Name: "Dana", Role: models.RoleMember, AgreedContribution: 6000}
	next := append(roommates[:2:2], dana)
	req.NoError(client.SaveRoommates(ctx, next))

	roommates, err = client.Roommates(ctx)
	req.NoError(err)
	req.Equal([]string{"1", "2", "4"}, []string{roommates[0].ID, roommates[1].ID, roommates[2].ID})
}

func TestClient_SaveExpensesInsertsEveryMissingItem(t *testing.T) {
	req := require.New(t)
	client, log := setupClient(t, service.Options{})
	ctx := context.Background()
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	expenses := []models.Expense{
		{ID: "e1", Title: "Rent", Amount: 18000, PaidBy: "1", Category: models.CategoryRent, Date: day, SplitAmong: []string{"1", "2", "3"}},
	}
	req.NoError(client.SaveExpenses(ctx, expenses))

	// two new entries at once are both sent
	expenses = append(expenses,
		models.Expense{ID: "e2", Title: "Petrol", Amount: 900, PaidBy: "3", Category: models.CategoryPetrol, Date: day.Add(time.Hour), SplitAmong: []string{"3"}},
		models.Expense{ID: "e3", Title: models.ContributionTitle, Amount: 6000, PaidBy: "2", Category: models.CategoryContribution, Date: day.Add(2 * time.Hour), SplitAmong: []string{"2"}},
	)
	log.reset()
	req.NoError(client.SaveExpenses(ctx, expenses))
	req.Equal(2, log.count("POST /api/expenses"))

	got, err := client.Expenses(ctx)
	req.NoError(err)
	req.Len(got, 3)
	req.Equal("e3", got[2].ID)
}

func TestClient_SaveTasks(t *testing.T) {
	req := require.New(t)
	client, log := setupClient(t, service.Options{})
	ctx := context.Background()

	tasks := []models.Task{
		{ID: "t1", Title: "Dishes", AssignedTo: "2", DueDate: "2025-05-02", Status: models.TaskPending},
		{ID: "t2", Title: "Trash", AssignedTo: "3", DueDate: "2025-05-03", Status: models.TaskPending},
	}
	req.NoError(client.SaveTasks(ctx, tasks))
	req.Equal(2, log.count("POST /api/tasks"))

	log.reset()
	reminded := time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC)
	tasks[0].Status = models.TaskCompleted
	tasks[1].LastReminded = &reminded
	req.NoError(client.SaveTasks(ctx, tasks))
	req.Equal(0, log.count("POST /api/tasks"))
	req.Equal(1, log.count("PUT /api/tasks/t1"))
	req.Equal(1, log.count("PUT /api/tasks/t2"))

	// unchanged tasks are not resent
	log.reset()
	req.NoError(client.SaveTasks(ctx, tasks))
	req.Equal(0, log.count("POST /api/tasks"))
	req.Equal(0, log.count("PUT /api/tasks/t1"))

	got, err := client.Tasks(ctx)
	req.NoError(err)
	req.Equal(models.TaskCompleted, got[0].Status)
	req.True(reminded.Equal(*got[1].LastReminded))
}

func TestClient_MessagesAndBudgets(t *testing.T) {
	req := require.New(t)
	client, _ := setupClient(t, service.Options{})
	ctx := context.Background()
	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	snap := models.TaskSnapshot{TaskID: "t1", Title: "Dishes", Status: models.TaskCompleted}
	messages := []models.ChatMessage{
		{ID: "m1", SenderID: "1", Content: "hi", Timestamp: at, Type: models.MessageText},
		{ID: "m2", SenderID: "2", Content: `Completed task "Dishes"`, Timestamp: at.Add(time.Minute), Type: models.MessageTaskUpdated, TaskSnapshot: &snap},
	}
	req.NoError(client.SaveMessages(ctx, messages))
	got, err := client.Messages(ctx)
	req.NoError(err)
	req.Len(got, 2)
	req.Equal(&snap, got[1].TaskSnapshot)

	budgets := models.Budgets{
		Allocations: map[string]float64{"Grocery": 4000, "Custom-1": 600},
		Labels:      map[string]string{"Custom-1": "Internet"},
	}
	req.NoError(client.SaveBudgets(ctx, budgets))
	gotBudgets, err := client.Budgets(ctx)
	req.NoError(err)
	req.Equal(budgets, gotBudgets)
}

func TestClient_Authenticate(t *testing.T) {
	req := require.New(t)
	client, _ := setupClient(t, service.Options{JWTManager: auth.NewJWTManager("secret", time.Hour)})
	ctx := context.Background()

	_, err := client.Expenses(ctx)
	req.ErrorIs(err, ErrUnauthorized)

	_, err = client.Authenticate(ctx, "nobody")
	req.ErrorIs(err, storage.ErrNotFound)

	token, err := client.Authenticate(ctx, "2")
	req.NoError(err)
	req.NotEmpty(token)

	_, err = client.Expenses(ctx)
	req.NoError(err)
}
