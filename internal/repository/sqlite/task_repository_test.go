package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

func createTestBoard(t *testing.T, users repository.UserRepository, boards repository.BoardRepository) *domain.Board {
	t.Helper()
	owner := createTestUser(t, users, "owner@example.com")
	board := &domain.Board{Title: "Sprint 1", OwnerID: owner.ID}
	_, err := boards.Create(context.Background(), board)
	require.NoError(t, err)
	return board
}

func TestTaskCreateAndGet(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)

	task := &domain.Task{
		Title:   "Write spec",
		Status:  domain.TaskStatusPending,
		BoardID: board.ID,
	}
	_, err := tasks.Create(ctx, task)
	require.NoError(t, err)
	assert.Positive(t, task.ID)

	got, err := tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write spec", got.Title)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	assert.Nil(t, got.AssigneeID)
}

func TestTaskListByBoardAscending(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := tasks.Create(ctx, &domain.Task{Title: title, Status: domain.TaskStatusPending, BoardID: board.ID})
		require.NoError(t, err)
	}

	listed, err := tasks.ListByBoard(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, title := range titles {
		assert.Equal(t, title, listed[i].Title)
	}
	for i := 1; i < len(listed); i++ {
		assert.False(t, listed[i].CreatedAt.Before(listed[i-1].CreatedAt))
	}
}

func TestTaskPartialUpdate(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)
	task := &domain.Task{
		Title:       "Write spec",
		Description: "the details",
		Status:      domain.TaskStatusPending,
		BoardID:     board.ID,
	}
	_, err := tasks.Create(ctx, task)
	require.NoError(t, err)

	status := domain.TaskStatusInProgress
	require.NoError(t, tasks.Update(ctx, task.ID, repository.TaskUpdate{Status: &status}))

	got, err := tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, got.Status)
	assert.Equal(t, "Write spec", got.Title)
	assert.Equal(t, "the details", got.Description)
}

func TestTaskUpdateAssignee(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)
	assignee := createTestUser(t, users, "assignee@example.com")

	task := &domain.Task{Title: "Write spec", Status: domain.TaskStatusPending, BoardID: board.ID}
	_, err := tasks.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, tasks.Update(ctx, task.ID, repository.TaskUpdate{AssigneeID: &assignee.ID}))
	got, err := tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, assignee.ID, *got.AssigneeID)

	require.NoError(t, tasks.Update(ctx, task.ID, repository.TaskUpdate{ClearAssignee: true}))
	got, err = tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)
}

func TestTaskUpdateNoFields(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)
	task := &domain.Task{Title: "Write spec", Status: domain.TaskStatusPending, BoardID: board.ID}
	_, err := tasks.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, tasks.Update(ctx, task.ID, repository.TaskUpdate{}))

	got, err := tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write spec", got.Title)
}

func TestTaskDeleteByBoard(t *testing.T) {
	_, users, boards, tasks := openTestDB(t)
	ctx := context.Background()

	board := createTestBoard(t, users, boards)
	for i := 0; i < 3; i++ {
		_, err := tasks.Create(ctx, &domain.Task{Title: "t", Status: domain.TaskStatusPending, BoardID: board.ID})
		require.NoError(t, err)
	}

	require.NoError(t, tasks.DeleteByBoard(ctx, board.ID))

	listed, err := tasks.ListByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestTaskDeleteMissing(t *testing.T) {
	_, _, _, tasks := openTestDB(t)

	err := tasks.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
