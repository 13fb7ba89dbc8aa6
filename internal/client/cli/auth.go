package cli

import (
	"context"
	"fmt"

	"github.com/dkolesov/shopfront/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Sign In ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	result := c.session.Login(ctx, email, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Message)
	}

	user := c.session.User()
	c.io.Println("✓ Signed in")
	if user != nil {
		c.io.Printf("Welcome back, %s!\n", user.Username)
	}
	return nil
}

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Create Account ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	c.io.Println()
	result := c.session.Register(ctx, api.RegisterRequest{
		Email:           email,
		Username:        username,
		Password:        password,
		PasswordConfirm: confirm,
	})
	if !result.Success {
		c.printFieldErrors(result.Errors)
		return fmt.Errorf("registration failed")
	}

	c.io.Println("✓ Account created, you are signed in")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Signed out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: not signed in")
		c.io.Println()
		c.io.Println("Run 'shopfront login' to sign in.")
		return nil
	}

	user := c.session.User()
	c.io.Println("Status: signed in")
	c.io.Printf("Email:    %s\n", user.Email)
	c.io.Printf("Username: %s\n", user.Username)
	if c.session.IsAdmin() {
		c.io.Println("Role:     admin")
	}
	return nil
}

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "edit" {
		return c.runProfileEdit(ctx)
	}

	// Refresh from the server so the view reflects current state
	if err := c.session.FetchUser(ctx); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	user := c.session.User()
	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("Email:    %s\n", user.Email)
	c.io.Printf("Username: %s\n", user.Username)
	if user.Phone != "" {
		c.io.Printf("Phone:    %s\n", user.Phone)
	}
	if user.Address != "" {
		c.io.Printf("Address:  %s, %s %s, %s\n", user.Address, user.City, user.ZipCode, user.Country)
	}
	return nil
}

func (c *Cli) runProfileEdit(ctx context.Context) error {
	c.io.Println("=== Edit Profile ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	var req api.UpdateProfileRequest
	var err error
	if req.Phone, err = c.io.ReadInput("Phone: "); err != nil {
		return err
	}
	if req.Address, err = c.io.ReadInput("Address: "); err != nil {
		return err
	}
	if req.City, err = c.io.ReadInput("City: "); err != nil {
		return err
	}
	if req.ZipCode, err = c.io.ReadInput("Zip code: "); err != nil {
		return err
	}
	if req.Country, err = c.io.ReadInput("Country: "); err != nil {
		return err
	}

	result := c.session.UpdateProfile(ctx, req)
	if !result.Success {
		c.printFieldErrors(result.Errors)
		return fmt.Errorf("profile update failed")
	}

	c.io.Println("✓ Profile updated")
	return nil
}

func (c *Cli) runChangePassword(ctx context.Context) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	oldPassword, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	newPassword, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	result := c.session.ChangePassword(ctx, api.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if !result.Success {
		return fmt.Errorf("password change failed: %s", result.Message)
	}

	c.io.Println("✓ Password changed")
	return nil
}

func (c *Cli) printFieldErrors(errors map[string][]string) {
	for field, messages := range errors {
		for _, msg := range messages {
			c.io.Printf("  %s: %s\n", field, msg)
		}
	}
}
