package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/privacyhub/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func testSession(expiresAt int64) *storage.SessionData {
	return &storage.SessionData{
		UserID:    "user-123",
		Name:      "Ann",
		Email:     "ann@x.com",
		Role:      "Standard User",
		Token:     "header.payload.signature",
		ExpiresAt: expiresAt,
	}
}

func TestStorage_SaveGetSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	session := testSession(time.Now().Add(time.Hour).Unix())
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestStorage_GetSession_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSession_Replaces(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	first := testSession(time.Now().Add(time.Hour).Unix())
	require.NoError(t, s.SaveSession(ctx, first))

	second := testSession(time.Now().Add(2 * time.Hour).Unix())
	second.Email = "other@x.com"
	require.NoError(t, s.SaveSession(ctx, second))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other@x.com", got.Email)
}

func TestStorage_DeleteSession(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, testSession(time.Now().Add(time.Hour).Unix())))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторный logout без сессии
	assert.ErrorIs(t, s.DeleteSession(ctx), storage.ErrSessionNotFound)
}

func TestStorage_IsAuthenticated(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	// Нет сессии
	ok, err := s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Живая сессия
	require.NoError(t, s.SaveSession(ctx, testSession(time.Now().Add(time.Hour).Unix())))
	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Истекшая сессия
	require.NoError(t, s.SaveSession(ctx, testSession(time.Now().Add(-time.Hour).Unix())))
	ok, err = s.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
