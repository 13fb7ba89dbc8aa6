package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkolesov/shopfront/pkg/api"
)

// Login authenticates with email and password
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/login/", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/register/", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Logout asks the server to invalidate the refresh token
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := api.LogoutRequest{Refresh: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/users/logout/", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Profile fetches the current user's profile
func (c *Client) Profile(ctx context.Context) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodGet, "/users/profile/", nil, &user); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the updated user
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	var user api.User
	if err := c.do(ctx, http.MethodPatch, "/users/profile/", req, &user); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &user, nil
}

// ChangePassword changes the account password
func (c *Client) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if err := c.do(ctx, http.MethodPost, "/users/change-password/", req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// AdminCheck asks the server whether the current user has admin rights
func (c *Client) AdminCheck(ctx context.Context) (*api.AdminCheckResponse, error) {
	var resp api.AdminCheckResponse
	if err := c.do(ctx, http.MethodGet, "/users/admin-check/", nil, &resp); err != nil {
		return nil, fmt.Errorf("admin check request failed: %w", err)
	}
	return &resp, nil
}
