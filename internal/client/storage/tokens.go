package storage

import (
	"context"
)

// TokenStorage defines the persistent holder for the credential pair.
// It is the only place tokens are read or written; other components hold
// a token no longer than the lifetime of one outbound request.
type TokenStorage interface {
	// GetAccessToken returns the stored access token.
	// Returns ErrTokensNotFound if no credential pair exists.
	GetAccessToken(ctx context.Context) (string, error)

	// GetRefreshToken returns the stored refresh token.
	// Returns ErrTokensNotFound if no credential pair exists.
	GetRefreshToken(ctx context.Context) (string, error)

	// SaveTokens stores a new credential pair, replacing any previous one.
	SaveTokens(ctx context.Context, access, refresh string) error

	// SaveAccessToken replaces only the access token, keeping the stored
	// refresh token. Used after a successful refresh call.
	SaveAccessToken(ctx context.Context, access string) error

	// ClearTokens removes both tokens. The two slots are always cleared
	// together, never independently. Clearing an empty store is not an error.
	ClearTokens(ctx context.Context) error
}

// SessionStorage persists the anonymous session key that identifies the
// guest cart before authentication.
type SessionStorage interface {
	// GetSessionKey returns the stored guest session key.
	// Returns ErrSessionKeyNotFound if none has been established.
	GetSessionKey(ctx context.Context) (string, error)

	// SaveSessionKey stores the guest session key.
	SaveSessionKey(ctx context.Context, key string) error

	// DeleteSessionKey removes the guest session key.
	DeleteSessionKey(ctx context.Context) error
}

// TokenData is the stored form of the credential pair. Tokens are opaque
// strings persisted as-is: the source of truth for their validity is the
// server, not anything the client can inspect.
type TokenData struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
	SavedAt int64  `json:"saved_at"`
}
