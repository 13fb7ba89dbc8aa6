package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dkolesov/shopfront/internal/client/storage"
)

var sessionKeyKey = []byte("guest_session_key")

// Compile-time check that Storage implements SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// GetSessionKey returns the stored guest session key
func (s *Storage) GetSessionKey(ctx context.Context) (string, error) {
	var key string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		raw := bucket.Get(sessionKeyKey)
		if raw == nil {
			return storage.ErrSessionKeyNotFound
		}

		key = string(raw)
		return nil
	})

	if err != nil {
		return "", err
	}

	return key, nil
}

// SaveSessionKey stores the guest session key
func (s *Storage) SaveSessionKey(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(sessionKeyKey, []byte(key)); err != nil {
			return fmt.Errorf("failed to save session key: %w", err)
		}

		return nil
	})
}

// DeleteSessionKey removes the guest session key
func (s *Storage) DeleteSessionKey(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(sessionKeyKey); err != nil {
			return fmt.Errorf("failed to delete session key: %w", err)
		}

		return nil
	})
}
