package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmynk/roomiesync/internal/assistant"
	"github.com/mmynk/roomiesync/internal/mocks"
	"github.com/mmynk/roomiesync/internal/models"
)

func TestTaskLifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	c, store, s := setup(t, "1")

	s, err := c.AddTask(ctx, s, NewTask{Title: "Clean Kitchen", AssignedTo: "3", DueDate: "2024-03-06"})
	req.NoError(err)
	req.Len(s.Tasks, 1)
	task := s.Tasks[0]
	req.Equal(models.TaskPending, task.Status)
	req.Equal(1, PendingCount(s.Tasks, "3"))

	req.Len(s.Messages, 1)
	assigned := s.Messages[0]
	req.Equal(models.MessageTaskAssigned, assigned.Type)
	req.Equal(`Assigned task "Clean Kitchen" to Charlie Chef`, assigned.Content)
	req.Equal("1", assigned.SenderID)
	req.Equal(&models.TaskSnapshot{TaskID: task.ID, Title: "Clean Kitchen", Status: models.TaskPending}, assigned.TaskSnapshot)

	s, err = c.CompleteTask(ctx, s, task.ID)
	req.NoError(err)
	req.Equal(models.TaskCompleted, s.Tasks[0].Status)
	req.Equal(0, PendingCount(s.Tasks, "3"))
	req.Len(s.Messages, 2)
	updated := s.Messages[1]
	req.Equal(models.MessageTaskUpdated, updated.Type)
	req.Equal(`Completed task "Clean Kitchen"`, updated.Content)
	req.Equal(models.TaskCompleted, updated.Status)

	// the earlier snapshot is kept, the live task wins when resolving
	req.Equal(models.TaskPending, s.Messages[0].Status)
	status, ok := ResolveTaskStatus(s.Messages[0], s.Tasks)
	req.True(ok)
	req.Equal(models.TaskCompleted, status)

	// completing again announces nothing
	s, err = c.CompleteTask(ctx, s, task.ID)
	req.NoError(err)
	req.Len(s.Messages, 2)

	stored, err := store.Messages(ctx)
	req.NoError(err)
	req.Equal(s.Messages, stored)
}

func TestAddTask_SystemSenderWhenLoggedOut(t *testing.T) {
	req := require.New(t)
	c, _, s := setup(t, "")

	s, err := c.AddTask(context.Background(), s, NewTask{Title: "Trash", AssignedTo: "2", DueDate: "2024-03-06"})
	req.NoError(err)
	req.Equal(models.SystemSender, s.Messages[0].SenderID)
}

func TestAddTask_Invalid(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		in   NewTask
		want error
	}{
		{name: "no title", in: NewTask{AssignedTo: "2", DueDate: "2024-03-06"}, want: ErrInvalidInput},
		{name: "bad date", in: NewTask{Title: "Trash", AssignedTo: "2", DueDate: "06/03/2024"}, want: ErrInvalidInput},
		{name: "unknown assignee", in: NewTask{Title: "Trash", AssignedTo: "42", DueDate: "2024-03-06"}, want: ErrUnknownRoommate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			c, _, s := setup(t, "1")
			got, err := c.AddTask(ctx, s, tt.in)
			req.ErrorIs(err, tt.want)
			req.Equal(s, got)
		})
	}
}

func TestAddTask_MessageSaveFailureKeepsTask(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	c := newController(store, sessions, nil)

	s := State{Roommates: models.SeedRoommates(), Budgets: models.NewBudgets()}
	store.EXPECT().SaveTasks(gomock.Any(), gomock.Len(1)).Return(nil)
	store.EXPECT().SaveMessages(gomock.Any(), gomock.Len(1)).Return(errors.New("offline"))

	got, err := c.AddTask(context.Background(), s, NewTask{Title: "Trash", AssignedTo: "2", DueDate: "2024-03-06"})
	req.Error(err)
	req.Len(got.Tasks, 1)
	req.Empty(got.Messages)
}

func TestUpdateTask_UnknownTask(t *testing.T) {
	req := require.New(t)
	c, _, s := setup(t, "1")
	_, err := c.CompleteTask(context.Background(), s, "missing")
	req.ErrorIs(err, ErrUnknownTask)
	_, err = c.UpdateTask(context.Background(), s, models.Task{ID: "missing"})
	req.ErrorIs(err, ErrUnknownTask)
}

func TestUpdateTask_CompletedStaysCompleted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	c, store, s := setup(t, "1")

	s, err := c.AddTask(ctx, s, NewTask{Title: "Clean Kitchen", AssignedTo: "3", DueDate: "2024-03-06"})
	req.NoError(err)
	s, err = c.CompleteTask(ctx, s, s.Tasks[0].ID)
	req.NoError(err)

	reopened := s.Tasks[0]
	reopened.Status = models.TaskPending
	got, err := c.UpdateTask(ctx, s, reopened)
	req.ErrorIs(err, ErrInvalidInput)
	req.Equal(s, got)

	tasks, err := store.Tasks(ctx)
	req.NoError(err)
	req.Equal(models.TaskCompleted, tasks[0].Status)
}

func TestRemindTask(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	ai := mocks.NewMockAssistant(ctrl)

	store := newKVStore(t)
	c := newController(store, store, ai)
	s, err := c.Login(ctx, c.Load(ctx), "1")
	req.NoError(err)
	s, err = c.AddTask(ctx, s, NewTask{Title: "Clean Kitchen", AssignedTo: "3", DueDate: "2024-03-03"})
	req.NoError(err)
	taskID := s.Tasks[0].ID

	ai.EXPECT().ReminderMessage(gomock.Any(), "Clean Kitchen", "Charlie Chef", 3).Return("Charlie, the kitchen awaits!")
	s, reminder, err := c.RemindTask(ctx, s, taskID)
	req.NoError(err)
	req.Equal("Charlie, the kitchen awaits!", reminder)
	req.NotNil(s.Tasks[0].LastReminded)
	req.Equal(testNow, *s.Tasks[0].LastReminded)
	req.Equal(models.TaskPending, s.Tasks[0].Status)
	req.Len(s.Messages, 1)

	stored, err := store.Tasks(ctx)
	req.NoError(err)
	req.Equal(testNow, stored[0].LastReminded.UTC())

	_, _, err = c.RemindTask(ctx, s, "missing")
	req.ErrorIs(err, ErrUnknownTask)
}

func TestRemindTask_UnknownAssignee(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	ai := mocks.NewMockAssistant(ctrl)
	store := newKVStore(t)
	c := newController(store, store, ai)

	s := c.Load(ctx)
	s.Tasks = []models.Task{{ID: "t1", Title: "Trash", AssignedTo: "gone", DueDate: "2024-03-05", Status: models.TaskPending}}

	ai.EXPECT().ReminderMessage(gomock.Any(), "Trash", "Roommate", 1).Return(assistant.FallbackReminder)
	_, reminder, err := c.RemindTask(ctx, s, "t1")
	req.NoError(err)
	req.Equal(assistant.FallbackReminder, reminder)
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		due  string
		want bool
	}{
		{due: "2024-03-04", want: true},
		{due: "2024-03-05", want: false},
		{due: "2024-03-06", want: false},
		{due: "2023-12-31", want: true},
		{due: "soon", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.due, func(t *testing.T) {
			task := models.Task{DueDate: tt.due}
			require.Equal(t, tt.want, IsOverdue(task, testNow, time.UTC))
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	tests := []struct {
		due  string
		want int
	}{
		{due: "2024-03-03", want: 3},
		{due: "2024-03-04", want: 2},
		{due: "2024-03-05", want: 1},
		{due: "2024-03-10", want: 1},
		{due: "bad", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.due, func(t *testing.T) {
			task := models.Task{DueDate: tt.due}
			require.Equal(t, tt.want, DaysOverdue(task, testNow, time.UTC))
		})
	}
}

func TestResolveTaskStatus(t *testing.T) {
	req := require.New(t)
	tasks := []models.Task{{ID: "t1", Status: models.TaskCompleted}}

	_, ok := ResolveTaskStatus(models.ChatMessage{Type: models.MessageText}, tasks)
	req.False(ok)

	deleted := models.ChatMessage{TaskSnapshot: &models.TaskSnapshot{TaskID: "t9", Status: models.TaskPending}}
	status, ok := ResolveTaskStatus(deleted, tasks)
	req.True(ok)
	req.Equal(models.TaskPending, status)
}
