package repository

import (
	"context"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
)

// TaskUpdate carries the fields of a partial task update. Nil means "leave
// the stored value untouched".
type TaskUpdate struct {
	Title         *string
	Description   *string
	Status        *domain.TaskStatus
	AssigneeID    *int64
	ClearAssignee bool
}

// TaskRepository exposes persistence operations for Task entities.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByBoard(ctx context.Context, boardID int64) ([]domain.Task, error)
	Update(ctx context.Context, id int64, update TaskUpdate) error
	Delete(ctx context.Context, id int64) error
	DeleteByBoard(ctx context.Context, boardID int64) error
}
