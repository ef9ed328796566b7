package models

import "time"

// MessageType distinguishes plain chat from task notifications.
type MessageType string

const (
	MessageText         MessageType = "TEXT"
	MessageTaskAssigned MessageType = "TASK_ASSIGNED"
	MessageTaskUpdated  MessageType = "TASK_UPDATED"
)

// SystemSender is the sender ID used when no user is logged in.
const SystemSender = "SYSTEM"

// TaskSnapshot is a point-in-time copy of a task's identity and status taken when a
// message was sent. Later task changes do not update it; readers should prefer the
// live task when it still exists.
type TaskSnapshot struct {
	TaskID string     `json:"relatedTaskId,omitempty"`
	Title  string     `json:"relatedTaskTitle,omitempty"`
	Status TaskStatus `json:"relatedTaskStatus,omitempty"`
}

// ChatMessage is one append-only entry of the household feed.
type ChatMessage struct {
	ID        string      `json:"id" validate:"required"`
	SenderID  string      `json:"senderId" validate:"required"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type" validate:"required,oneof=TEXT TASK_ASSIGNED TASK_UPDATED"`

	// *TaskSnapshot is flattened into the message on the wire and is nil for TEXT messages.
	*TaskSnapshot
}
