package storage

import "errors"

// Common client storage errors
var (
	// ErrTokensNotFound indicates that no credential pair is stored
	ErrTokensNotFound = errors.New("tokens not found")

	// ErrSessionKeyNotFound indicates that no guest session key exists
	ErrSessionKeyNotFound = errors.New("session key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
