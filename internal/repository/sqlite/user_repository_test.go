package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reedthedev13/Project-Management-SaaS-backend/internal/domain"
)

func TestUserCreateAndGet(t *testing.T) {
	_, users, _, _ := openTestDB(t)
	ctx := context.Background()

	created := createTestUser(t, users, "alice@example.com")
	assert.Positive(t, created.ID)

	byEmail, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Test User", byEmail.Name)
	assert.Equal(t, "light", byEmail.Theme)
	assert.True(t, byEmail.Notifications)

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	_, users, _, _ := openTestDB(t)

	createTestUser(t, users, "alice@example.com")

	dup := domain.User{
		Email:        "alice@example.com",
		Name:         "Another Alice",
		PasswordHash: "hash",
		Theme:        "light",
	}
	_, err := users.Create(context.Background(), &dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUserGetMissing(t *testing.T) {
	_, users, _, _ := openTestDB(t)

	_, err := users.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUserUpdate(t *testing.T) {
	_, users, _, _ := openTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, users, "alice@example.com")
	user.Name = "Alice B."
	user.Theme = "dark"
	user.Notifications = false
	require.NoError(t, users.Update(ctx, user))

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", got.Name)
	assert.Equal(t, "dark", got.Theme)
	assert.False(t, got.Notifications)
}

func TestUserDelete(t *testing.T) {
	_, users, _, _ := openTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, users, "alice@example.com")
	require.NoError(t, users.Delete(ctx, user.ID))

	_, err := users.GetByID(ctx, user.ID)
	require.Error(t, err)

	err = users.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
