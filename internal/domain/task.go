package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task is a unit of work living inside a board.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	BoardID     int64
	AssigneeID  *int64
	CreatedAt   time.Time
}
