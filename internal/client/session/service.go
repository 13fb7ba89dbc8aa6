// Package session holds the client's authenticated-session state machine:
// the current user, the admin flag, and the one-way initialized latch.
// All mutations go through the request pipeline; tokens live only in the
// token store.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/internal/client/storage"
	"github.com/dkolesov/shopfront/internal/validation"
	"github.com/dkolesov/shopfront/pkg/api"
)

// Reconciler folds the guest cart into the authenticated user's cart.
// Implemented by the cart store; invoked after login commits the tokens.
type Reconciler interface {
	MergeGuest(ctx context.Context) error
}

// Service drives login, registration, logout and profile refresh, and
// exposes the derived authentication status to the rest of the client.
type Service struct {
	apiClient  *apiclient.Client
	tokens     storage.TokenStorage
	reconciler Reconciler

	mu          sync.Mutex
	user        *api.User
	initDone    chan struct{}
	isAdmin     bool
	initialized bool

	initStarted atomic.Bool
}

// NewService creates the session service. reconciler may be nil when the
// client has no cart subsystem wired (e.g. in tests).
func NewService(apiClient *apiclient.Client, tokens storage.TokenStorage, reconciler Reconciler) *Service {
	return &Service{
		apiClient:  apiClient,
		tokens:     tokens,
		reconciler: reconciler,
	}
}

// IsAuthenticated reports whether a user is loaded. It is equivalent to
// "user is present": tokens alone do not make a session authenticated.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsAdmin reports the cached admin flag. False may mean either "not an
// admin" or "not checked yet"; consult Initialized to tell them apart.
func (s *Service) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAdmin
}

// Initialized reports whether the first initialization attempt has
// completed, successfully or not, since process start or last logout.
func (s *Service) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// User returns a copy of the cached user, or nil when unauthenticated.
func (s *Service) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	userCopy := *s.user
	return &userCopy
}

// Initialize restores the session from a persisted credential pair. On
// any failure the credentials are cleared and the session settles as
// unauthenticated. The initialized latch flips regardless of outcome.
func (s *Service) Initialize(ctx context.Context) {
	defer s.markInitialized()

	if _, err := s.tokens.GetAccessToken(ctx); err != nil {
		// No stored credential: nothing to restore
		return
	}

	if err := s.FetchUser(ctx); err != nil {
		slog.Debug("session restore failed, clearing credentials", "error", err)
		if clearErr := s.tokens.ClearTokens(ctx); clearErr != nil {
			slog.Warn("failed to clear credentials", "error", clearErr)
		}
		s.clearState()
	}
}

// StartBackgroundInit fires Initialize in a goroutine, at most once per
// session lifetime. The guard calls this on navigation so initialization
// never blocks the critical path; InitDone signals completion.
func (s *Service) StartBackgroundInit(ctx context.Context) {
	if !s.initStarted.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.initDone = done
	s.mu.Unlock()

	// The initialization outlives the navigation that triggered it
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		s.Initialize(bgCtx)
	}()
}

// InitDone returns a channel closed when background initialization has
// completed. If none was ever started the channel is already closed.
func (s *Service) InitDone() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initDone == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.initDone
}

// LoginResult is the outcome of a login attempt. Login never returns an
// error: failures carry a displayable message instead.
type LoginResult struct {
	Message string
	Success bool
}

// Login authenticates, commits the credential pair, loads the user,
// checks admin rights and reconciles the guest cart. Reconciliation
// failure never fails the login.
func (s *Service) Login(ctx context.Context, email, password string) LoginResult {
	req := api.LoginRequest{Email: email, Password: password}
	if err := validation.ValidateLogin(req); err != nil {
		return LoginResult{Message: err.Error()}
	}

	resp, err := s.apiClient.Login(ctx, req)
	if err != nil {
		return LoginResult{Message: apiclient.ErrorMessage(err, "Login failed")}
	}

	if err := s.commitAuth(ctx, resp); err != nil {
		return LoginResult{Message: "Failed to persist session"}
	}

	s.mergeGuestCart(ctx)

	return LoginResult{Success: true}
}

// RegisterResult is the outcome of a registration attempt. Field-level
// server errors are passed through verbatim for form display.
type RegisterResult struct {
	Errors  map[string][]string
	Success bool
}

// Register creates an account and then behaves exactly like Login.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) RegisterResult {
	if err := validation.ValidateRegister(req); err != nil {
		return RegisterResult{Errors: validation.FieldMap(err)}
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		if fields := apiclient.FieldErrors(err); fields != nil {
			return RegisterResult{Errors: fields}
		}
		msg := apiclient.ErrorMessage(err, "Registration failed")
		return RegisterResult{Errors: map[string][]string{"general": {msg}}}
	}

	if err := s.commitAuth(ctx, resp); err != nil {
		return RegisterResult{Errors: map[string][]string{"general": {"Failed to persist session"}}}
	}

	s.mergeGuestCart(ctx)

	return RegisterResult{Success: true}
}

// Logout invalidates the refresh token server-side on a best-effort
// basis, then unconditionally clears the local credential pair and
// session state. Server unreachability never keeps a session alive.
func (s *Service) Logout(ctx context.Context) error {
	refresh, err := s.tokens.GetRefreshToken(ctx)
	if err != nil {
		slog.Debug("no stored refresh token during logout", "error", err)
	} else if logoutErr := s.apiClient.Logout(ctx, refresh); logoutErr != nil {
		slog.Warn("failed to logout on server", "error", logoutErr)
	}

	if err := s.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	s.clearState()
	s.initStarted.Store(false)
	return nil
}

// FetchUser refreshes the cached user from the profile endpoint and
// re-runs the admin check.
func (s *Service) FetchUser(ctx context.Context) error {
	user, err := s.apiClient.Profile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.CheckAdmin(ctx)
	return nil
}

// CheckAdmin refreshes the admin flag. An unreachable or failing
// admin-check endpoint fails closed: the flag becomes false.
func (s *Service) CheckAdmin(ctx context.Context) {
	isAdmin := false
	if resp, err := s.apiClient.AdminCheck(ctx); err == nil {
		isAdmin = resp.IsAdmin
	}

	s.mu.Lock()
	s.isAdmin = isAdmin
	s.mu.Unlock()
}

// UpdateProfileResult is the outcome of a profile update.
type UpdateProfileResult struct {
	Errors  map[string][]string
	Success bool
}

// UpdateProfile applies a partial profile update; on success the cached
// user is replaced with the server's response.
func (s *Service) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) UpdateProfileResult {
	user, err := s.apiClient.UpdateProfile(ctx, req)
	if err != nil {
		if fields := apiclient.FieldErrors(err); fields != nil {
			return UpdateProfileResult{Errors: fields}
		}
		msg := apiclient.ErrorMessage(err, "Update failed")
		return UpdateProfileResult{Errors: map[string][]string{"general": {msg}}}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return UpdateProfileResult{Success: true}
}

// ChangePasswordResult is the outcome of a password change.
type ChangePasswordResult struct {
	Message string
	Success bool
}

// ChangePassword changes the account password. Session state is
// unaffected either way.
func (s *Service) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) ChangePasswordResult {
	if err := validation.ValidateChangePassword(req); err != nil {
		return ChangePasswordResult{Message: err.Error()}
	}

	if err := s.apiClient.ChangePassword(ctx, req); err != nil {
		return ChangePasswordResult{Message: apiclient.ErrorMessage(err, "Password change failed")}
	}

	return ChangePasswordResult{Success: true}
}

// commitAuth stores the credential pair, caches the user, runs the admin
// check and marks the session initialized. Token commit comes first:
// everything after it goes through the authenticated pipeline.
func (s *Service) commitAuth(ctx context.Context, resp *api.AuthResponse) error {
	if err := s.tokens.SaveTokens(ctx, resp.Tokens.Access, resp.Tokens.Refresh); err != nil {
		slog.Warn("failed to persist tokens", "error", err)
		return err
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.initialized = true
	s.mu.Unlock()

	s.CheckAdmin(ctx)
	return nil
}

func (s *Service) mergeGuestCart(ctx context.Context) {
	if s.reconciler == nil {
		return
	}
	if err := s.reconciler.MergeGuest(ctx); err != nil {
		slog.Warn("guest cart merge failed", "error", err)
	}
}

func (s *Service) markInitialized() {
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
}

func (s *Service) clearState() {
	s.mu.Lock()
	s.user = nil
	s.isAdmin = false
	s.initialized = false
	s.mu.Unlock()
}
