package api

import "time"

// User represents the storefront account as returned by the profile
// and login/register endpoints.
type User struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Country   string    `json:"country,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
}

// TokenPair carries the credential pair issued by login/register.
// Both tokens are opaque to the client: transported, never parsed.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents the registration form payload.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	User    User      `json:"user"`
	Tokens  TokenPair `json:"tokens"`
	Message string    `json:"message"`
}

// RefreshRequest carries the refresh token to mint a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse is the newly minted access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutRequest invalidates the refresh token server-side.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// AdminCheckResponse reports whether the current user has admin rights.
type AdminCheckResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// ChangePasswordRequest represents the change-password form payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest is a partial profile update. Empty fields are
// omitted so the server only touches what the form submitted.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Country   string `json:"country,omitempty"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
