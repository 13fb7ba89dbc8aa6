package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolesov/shopfront/internal/client/storage"
)

// createTestStorage opens a fresh BoltDB store in a temp dir
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SaveGetClearTokens(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Reads before any save report ErrTokensNotFound
	_, err := store.GetAccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
	_, err = store.GetRefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)

	err = store.SaveTokens(ctx, "access-123", "refresh-456")
	require.NoError(t, err)

	access, err := store.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-123", access)

	refresh, err := store.GetRefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-456", refresh)

	// Both slots clear together
	err = store.ClearTokens(ctx)
	require.NoError(t, err)

	_, err = store.GetAccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
	_, err = store.GetRefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
}

func TestStorage_SaveAccessToken(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Updating the access slot without a stored pair is an error:
	// a refresh response can only follow an earlier login.
	err := store.SaveAccessToken(ctx, "new-access")
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)

	require.NoError(t, store.SaveTokens(ctx, "old-access", "refresh-1"))
	require.NoError(t, store.SaveAccessToken(ctx, "new-access"))

	access, err := store.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", access)

	// The refresh token is untouched
	refresh, err := store.GetRefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", refresh)
}

func TestStorage_ClearTokens_Empty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Clearing an empty store must not fail: logout always succeeds locally
	assert.NoError(t, store.ClearTokens(ctx))
}

func TestStorage_SaveTokens_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveTokens(ctx, "a1", "r1"))
	require.NoError(t, store.SaveTokens(ctx, "a2", "r2"))

	access, err := store.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", access)

	refresh, err := store.GetRefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r2", refresh)
}
