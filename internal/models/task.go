package models

import "time"

// TaskStatus is the lifecycle state of a task. The only transition is
// pending to completed.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// DueDateLayout is the format of Task.DueDate.
const DueDateLayout = "2006-01-02"

// Task is a chore assigned to one roommate.
type Task struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	AssignedTo  string     `json:"assignedTo" validate:"required"`
	DueDate     string     `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status      TaskStatus `json:"status" validate:"required,oneof=PENDING COMPLETED"`
	Description string     `json:"description,omitempty"`

	// LastReminded is set each time a reminder is sent.
	LastReminded *time.Time `json:"lastReminded,omitempty"`
}

// Due parses DueDate in the given location.
func (t Task) Due(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DueDateLayout, t.DueDate, loc)
}

// Snapshot captures the task identity and status at the current moment.
func (t Task) Snapshot() TaskSnapshot {
	return TaskSnapshot{
		TaskID: t.ID,
		Title:  t.Title,
		Status: t.Status,
	}
}
