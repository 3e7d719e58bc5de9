package service

import (
	"context"
	"strings"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

// TaskService coordinates task level operations backed by repositories.
type TaskService interface {
	Create(ctx context.Context, boardID int64, title, description string, status domain.TaskStatus, assigneeID *int64) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByBoard(ctx context.Context, boardID int64) ([]domain.Task, error)
	Update(ctx context.Context, id int64, update repository.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	tasks  repository.TaskRepository
	boards repository.BoardRepository
}

func NewTaskService(tasks repository.TaskRepository, boards repository.BoardRepository) TaskService {
	return &taskService{
		tasks:  tasks,
		boards: boards,
	}
}

func (s *taskService) Create(ctx context.Context, boardID int64, title, description string, status domain.TaskStatus, assigneeID *int64) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationError("title is required")
	}
	if status == "" {
		status = domain.TaskStatusPending
	}

	// tasks must always land on an existing board
	if _, err := s.boards.Get(ctx, boardID); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, err
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Status:      status,
		BoardID:     boardID,
		AssigneeID:  assigneeID,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListByBoard(ctx context.Context, boardID int64) ([]domain.Task, error) {
	if _, err := s.boards.Get(ctx, boardID); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.tasks.ListByBoard(ctx, boardID)
}

func (s *taskService) Update(ctx context.Context, id int64, update repository.TaskUpdate) (*domain.Task, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, validationError("title cannot be empty")
	}
	if err := s.tasks.Update(ctx, id, update); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return ErrNotFound
		}
		return err
	}
	return nil
}
