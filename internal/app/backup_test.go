package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/service"
	"github.com/mmynk/roomiesync/internal/storage/remote"
	"github.com/mmynk/roomiesync/internal/storage/sqlite"
	"github.com/mmynk/roomiesync/internal/transfer"
)

func TestRestore_RemoteKeepsServerRecords(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	req.NoError(err)
	server := httptest.NewServer(service.NewHandler(repo, service.Options{}))
	t.Cleanup(func() {
		server.Close()
		repo.Close()
	})
	client := remote.New(server.URL+"/api", 5*time.Second, discardLogger())
	t.Cleanup(func() { _ = client.Close() })

	c := newController(client, newKVStore(t), nil)
	s, err := c.Login(ctx, c.Load(ctx), "1")
	req.NoError(err)
	s, err = c.CollectContribution(ctx, s, "2", 0)
	req.NoError(err)
	s, err = c.AddTask(ctx, s, NewTask{Title: "Trash", AssignedTo: "2", DueDate: "2024-03-06"})
	req.NoError(err)
	req.Len(s.Expenses, 1)
	req.Len(s.Tasks, 1)

	b := transfer.NewBackup(models.SeedRoommates(), nil, nil, nil, models.NewBudgets(), testNow)
	restored, err := c.Restore(ctx, s, b)
	req.NoError(err)

	onServer, err := client.Expenses(ctx)
	req.NoError(err)
	req.Len(onServer, 1)
	req.Equal(onServer, restored.Expenses)

	tasks, err := client.Tasks(ctx)
	req.NoError(err)
	req.Equal(tasks, restored.Tasks)
	req.Equal("1", restored.CurrentUser.ID)
}
