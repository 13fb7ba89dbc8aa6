package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dkolesov/shopfront/internal/client/storage"
)

var tokensKey = []byte("current")

// Compile-time check that Storage implements TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// SaveTokens stores a new credential pair, replacing any previous one
func (s *Storage) SaveTokens(ctx context.Context, access, refresh string) error {
	data := storage.TokenData{
		Access:  access,
		Refresh: refresh,
		SavedAt: time.Now().Unix(),
	}
	return s.putTokens(&data)
}

// SaveAccessToken replaces only the access token after a successful refresh
func (s *Storage) SaveAccessToken(ctx context.Context, access string) error {
	data, err := s.getTokens()
	if err != nil {
		return err
	}

	data.Access = access
	data.SavedAt = time.Now().Unix()
	return s.putTokens(data)
}

// GetAccessToken returns the stored access token
func (s *Storage) GetAccessToken(ctx context.Context) (string, error) {
	data, err := s.getTokens()
	if err != nil {
		return "", err
	}
	return data.Access, nil
}

// GetRefreshToken returns the stored refresh token
func (s *Storage) GetRefreshToken(ctx context.Context) (string, error) {
	data, err := s.getTokens()
	if err != nil {
		return "", err
	}
	return data.Refresh, nil
}

// ClearTokens removes both token slots together
func (s *Storage) ClearTokens(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		// Clearing an already empty store is a no-op, not an error:
		// logout must succeed regardless of prior state.
		if err := bucket.Delete(tokensKey); err != nil {
			return fmt.Errorf("failed to delete tokens: %w", err)
		}

		return nil
	})
}

func (s *Storage) putTokens(data *storage.TokenData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal token data: %w", err)
		}

		if err := bucket.Put(tokensKey, raw); err != nil {
			return fmt.Errorf("failed to save token data: %w", err)
		}

		return nil
	})
}

func (s *Storage) getTokens() (*storage.TokenData, error) {
	var data *storage.TokenData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTokens)
		if bucket == nil {
			return fmt.Errorf("tokens bucket not found")
		}

		raw := bucket.Get(tokensKey)
		if raw == nil {
			return storage.ErrTokensNotFound
		}

		data = &storage.TokenData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return fmt.Errorf("failed to unmarshal token data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
