package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/server/storage"
)

// setupTestStorage creates an in-memory storage with migrations applied
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testUser(email string) *models.User {
	return &models.User{
		ID:             uuid.New().String(),
		Name:           "Test User",
		Email:          email,
		PasswordDigest: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           models.RoleStandard,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestCreateUser_Success(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("ann@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.PasswordDigest, got.PasswordDigest)
	assert.Equal(t, models.RoleStandard, got.Role)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testUser("ann@x.com")))

	// Второй пользователь с тем же email отклоняется на уровне БД
	err := s.CreateUser(ctx, testUser("ann@x.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	user := testUser("ann@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
