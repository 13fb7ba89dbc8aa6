package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// The database file must actually exist on disk
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Both buckets must be created up front
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketTokens, bucketSession} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, filepath.Join("/nonexistent-dir-for-test", "db.db"))
	assert.Error(t, err)
}

func TestStorage_CloseNil(t *testing.T) {
	s := &Storage{}
	assert.NoError(t, s.Close())
}
