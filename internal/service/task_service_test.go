package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

func TestTaskCreateRequiresExistingBoard(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeBoardRepo())

	_, err := svc.Create(context.Background(), 99, "Write spec", "", domain.TaskStatusPending, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskCreateDefaultsStatus(t *testing.T) {
	boards := newFakeBoardRepo()
	board := &domain.Board{Title: "Sprint 1", OwnerID: 1}
	_, err := boards.Create(context.Background(), board)
	require.NoError(t, err)

	svc := NewTaskService(newFakeTaskRepo(), boards)
	task, err := svc.Create(context.Background(), board.ID, "Write spec", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
}

func TestTaskCreateRequiresTitle(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeBoardRepo())

	_, err := svc.Create(context.Background(), 1, "  ", "", domain.TaskStatusPending, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaskUpdatePartial(t *testing.T) {
	boards := newFakeBoardRepo()
	board := &domain.Board{Title: "Sprint 1", OwnerID: 1}
	_, err := boards.Create(context.Background(), board)
	require.NoError(t, err)

	svc := NewTaskService(newFakeTaskRepo(), boards)
	task, err := svc.Create(context.Background(), board.ID, "Write spec", "the details", domain.TaskStatusPending, nil)
	require.NoError(t, err)

	status := domain.TaskStatusInProgress
	updated, err := svc.Update(context.Background(), task.ID, repository.TaskUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	assert.Equal(t, "Write spec", updated.Title, "title must be untouched")
	assert.Equal(t, "the details", updated.Description, "description must be untouched")
}

func TestTaskUpdateRejectsEmptyTitle(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeBoardRepo())

	empty := " "
	_, err := svc.Update(context.Background(), 1, repository.TaskUpdate{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaskListMissingBoard(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeBoardRepo())

	_, err := svc.ListByBoard(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskDeleteMissing(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeBoardRepo())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
