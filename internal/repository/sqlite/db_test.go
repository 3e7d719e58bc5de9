package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/repository"
)

// openTestDB opens a throwaway database with all repositories initialised.
func openTestDB(t *testing.T) (*sql.DB, repository.UserRepository, repository.BoardRepository, repository.TaskRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := NewUserRepository(db)
	boards := NewBoardRepository(db)
	tasks := NewTaskRepository(db)

	ctx := context.Background()
	require.NoError(t, users.Init(ctx))
	require.NoError(t, boards.Init(ctx))
	require.NoError(t, tasks.Init(ctx))

	return db, users, boards, tasks
}

func createTestUser(t *testing.T, users repository.UserRepository, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:         email,
		Name:          "Test User",
		PasswordHash:  "hash",
		Theme:         "light",
		Notifications: true,
	}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}
