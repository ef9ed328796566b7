package app

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mmynk/roomiesync/internal/models"
)

// NewTask is the input of AddTask.
type NewTask struct {
	Title       string
	AssignedTo  string
	DueDate     string
	Description string
}

// AddTask creates a pending task and announces it in the chat.
func (c *Controller) AddTask(ctx context.Context, s State, in NewTask) (State, error) {
	t := models.Task{
		ID:          c.newID(),
		Title:       strings.TrimSpace(in.Title),
		AssignedTo:  in.AssignedTo,
		DueDate:     strings.TrimSpace(in.DueDate),
		Status:      models.TaskPending,
		Description: strings.TrimSpace(in.Description),
	}
	if err := validate.Struct(t); err != nil {
		return s, validationError(err)
	}
	assignee, ok := s.Roommate(t.AssignedTo)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownRoommate, t.AssignedTo)
	}

	tasks := append(slices.Clone(s.Tasks), t)
	if err := c.store.SaveTasks(ctx, tasks); err != nil {
		return s, fmt.Errorf("failed to save tasks: %w", err)
	}
	next := s.clone()
	next.Tasks = tasks
	c.log.Info("Task added", "task_id", t.ID, "assigned_to", t.AssignedTo, "due", t.DueDate)

	msg := c.taskMessage(s, t, models.MessageTaskAssigned,
		fmt.Sprintf("Assigned task %q to %s", t.Title, assignee.Name))
	return c.appendMessage(ctx, next, msg)
}

// UpdateTask replaces a task. Moving a task to COMPLETED announces it once; a
// completed task cannot be reopened.
func (c *Controller) UpdateTask(ctx context.Context, s State, t models.Task) (State, error) {
	i := slices.IndexFunc(s.Tasks, func(old models.Task) bool { return old.ID == t.ID })
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownTask, t.ID)
	}
	if err := validate.Struct(t); err != nil {
		return s, validationError(err)
	}
	old := s.Tasks[i]
	if old.Status == models.TaskCompleted && t.Status != models.TaskCompleted {
		return s, fmt.Errorf("%w: task %s is already completed", ErrInvalidInput, t.ID)
	}

	tasks := slices.Clone(s.Tasks)
	tasks[i] = t
	if err := c.store.SaveTasks(ctx, tasks); err != nil {
		return s, fmt.Errorf("failed to save tasks: %w", err)
	}
	next := s.clone()
	next.Tasks = tasks

	if old.Status == models.TaskCompleted || t.Status != models.TaskCompleted {
		return next, nil
	}
	c.log.Info("Task completed", "task_id", t.ID)
	msg := c.taskMessage(s, t, models.MessageTaskUpdated, fmt.Sprintf("Completed task %q", t.Title))
	return c.appendMessage(ctx, next, msg)
}

// CompleteTask marks a task as completed.
func (c *Controller) CompleteTask(ctx context.Context, s State, taskID string) (State, error) {
	t, ok := s.Task(taskID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	t.Status = models.TaskCompleted
	return c.UpdateTask(ctx, s, t)
}

// RemindTask writes a reminder for the task's assignee and stamps LastReminded.
// The reminder text is returned for display; it is not posted to the chat.
func (c *Controller) RemindTask(ctx context.Context, s State, taskID string) (State, string, error) {
	t, ok := s.Task(taskID)
	if !ok {
		return s, "", fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}

	assignee := "Roommate"
	if r, ok := s.Roommate(t.AssignedTo); ok {
		assignee = r.Name
	}
	now := c.now()
	days := DaysOverdue(t, now, c.loc)
	reminder := c.assistant.ReminderMessage(ctx, t.Title, assignee, days)

	t.LastReminded = &now
	next, err := c.UpdateTask(ctx, s, t)
	if err != nil {
		return s, "", err
	}
	c.log.Info("Reminder sent", "task_id", t.ID, "days_overdue", days)
	return next, reminder, nil
}

func (c *Controller) taskMessage(s State, t models.Task, typ models.MessageType, content string) models.ChatMessage {
	snapshot := t.Snapshot()
	return models.ChatMessage{
		ID:           c.newID(),
		SenderID:     s.SenderID(),
		Content:      content,
		Timestamp:    c.now(),
		Type:         typ,
		TaskSnapshot: &snapshot,
	}
}

// appendMessage persists msg after s. When that fails s is still returned, because
// the change that triggered the message has already been saved.
func (c *Controller) appendMessage(ctx context.Context, s State, msg models.ChatMessage) (State, error) {
	messages := append(slices.Clone(s.Messages), msg)
	if err := c.store.SaveMessages(ctx, messages); err != nil {
		return s, fmt.Errorf("failed to save messages: %w", err)
	}
	s.Messages = messages
	return s, nil
}

// ResolveTaskStatus returns the live status of the task a message refers to, or the
// status captured in the message when the task no longer exists.
func ResolveTaskStatus(msg models.ChatMessage, tasks []models.Task) (models.TaskStatus, bool) {
	if msg.TaskSnapshot == nil || msg.TaskID == "" {
		return "", false
	}
	if t, ok := lo.Find(tasks, func(t models.Task) bool { return t.ID == msg.TaskID }); ok {
		return t.Status, true
	}
	return msg.TaskSnapshot.Status, true
}

// IsOverdue reports whether the task's due date is before today. Completion is not
// considered; callers check the status.
func IsOverdue(t models.Task, now time.Time, loc *time.Location) bool {
	due, err := t.Due(loc)
	if err != nil {
		return false
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return due.Before(today)
}

// DaysOverdue is the number of started days since the due date, at least 1.
func DaysOverdue(t models.Task, now time.Time, loc *time.Location) int {
	due, err := t.Due(loc)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(now.Sub(due).Hours() / 24))
	return max(days, 1)
}

// PendingCount is the number of pending tasks assigned to roommateID.
func PendingCount(tasks []models.Task, roommateID string) int {
	return lo.CountBy(tasks, func(t models.Task) bool {
		return t.AssignedTo == roommateID && t.Status == models.TaskPending
	})
}
