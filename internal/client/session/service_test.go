package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/internal/client/storage"
	"github.com/dkolesov/shopfront/pkg/api"
)

// memTokens implements storage.TokenStorage in memory for tests
type memTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	has     bool
}

func (m *memTokens) GetAccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return "", storage.ErrTokensNotFound
	}
	return m.access, nil
}

func (m *memTokens) GetRefreshToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return "", storage.ErrTokensNotFound
	}
	return m.refresh, nil
}

func (m *memTokens) SaveTokens(ctx context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh, m.has = access, refresh, true
	return nil
}

func (m *memTokens) SaveAccessToken(ctx context.Context, access string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return storage.ErrTokensNotFound
	}
	m.access = access
	return nil
}

func (m *memTokens) ClearTokens(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh, m.has = "", "", false
	return nil
}

func (m *memTokens) hasTokens() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has
}

// mockReconciler records merge calls and what the token store held at
// merge time, so ordering against the token commit can be asserted
type mockReconciler struct {
	tokens          *memTokens
	err             error
	mu              sync.Mutex
	calls           int
	tokensCommitted bool
}

func (m *mockReconciler) MergeGuest(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.tokens != nil {
		m.tokensCommitted = m.tokens.hasTokens()
	}
	return m.err
}

// newAuthServer serves the auth endpoints with configurable outcomes
func newAuthServer(t *testing.T, isAdmin bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login/", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Message: "Login successful",
			User:    api.User{ID: "user-1", Email: req.Email, Username: "shopper"},
			Tokens:  api.TokenPair{Access: "access-1", Refresh: "refresh-1"},
		})
	})
	mux.HandleFunc("/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.User{ID: "user-1", Email: "user@shop.test", Username: "shopper"})
	})
	mux.HandleFunc("/users/admin-check/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AdminCheckResponse{IsAdmin: isAdmin})
	})
	mux.HandleFunc("/users/logout/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "ok"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestService_Initialize_NoToken(t *testing.T) {
	server := newAuthServer(t, false)
	tokens := &memTokens{}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	assert.False(t, svc.Initialized())
	svc.Initialize(context.Background())

	// The latch flips even though there was nothing to restore
	assert.True(t, svc.Initialized())
	assert.False(t, svc.IsAuthenticated())
}

func TestService_Initialize_Success(t *testing.T) {
	server := newAuthServer(t, true)
	tokens := &memTokens{access: "stored-access", refresh: "stored-refresh", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	svc.Initialize(context.Background())

	assert.True(t, svc.Initialized())
	assert.True(t, svc.IsAuthenticated())
	assert.True(t, svc.IsAdmin())

	user := svc.User()
	require.NotNil(t, user)
	assert.Equal(t, "user@shop.test", user.Email)
}

func TestService_Initialize_FailureClearsCredentials(t *testing.T) {
	// Profile rejects and there is no valid refresh path
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{access: "bad-access", refresh: "bad-refresh", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	svc.Initialize(context.Background())

	assert.True(t, svc.Initialized(), "latch flips on failure too")
	assert.False(t, svc.IsAuthenticated())
	assert.False(t, tokens.hasTokens())
}

func TestService_Login_Success(t *testing.T) {
	server := newAuthServer(t, true)
	tokens := &memTokens{}
	reconciler := &mockReconciler{tokens: tokens}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, reconciler)

	result := svc.Login(context.Background(), "user@shop.test", "correct-horse")

	require.True(t, result.Success, "message: %s", result.Message)
	assert.True(t, svc.IsAuthenticated())
	assert.True(t, svc.IsAdmin())
	assert.True(t, svc.Initialized())

	// Credential pair committed
	access, err := tokens.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", access)

	// Merge ran exactly once, and only after the token commit
	assert.Equal(t, 1, reconciler.calls)
	assert.True(t, reconciler.tokensCommitted)
}

func TestService_Login_MergeFailureDoesNotFailLogin(t *testing.T) {
	server := newAuthServer(t, false)
	tokens := &memTokens{}
	reconciler := &mockReconciler{tokens: tokens, err: assert.AnError}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, reconciler)

	result := svc.Login(context.Background(), "user@shop.test", "correct-horse")

	assert.True(t, result.Success)
	assert.Equal(t, 1, reconciler.calls)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	server := newAuthServer(t, false)
	tokens := &memTokens{}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	result := svc.Login(context.Background(), "user@shop.test", "wrong")

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)
	assert.False(t, svc.IsAuthenticated())
	assert.False(t, tokens.hasTokens())
}

func TestService_Login_ValidationFailure(t *testing.T) {
	server := newAuthServer(t, false)
	tokens := &memTokens{}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	result := svc.Login(context.Background(), "not-an-email", "pw")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestService_Register_FieldErrorsPassThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"email": {"user with this email already exists."},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	result := svc.Register(context.Background(), api.RegisterRequest{
		Email:           "user@shop.test",
		Username:        "shopper",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})

	assert.False(t, result.Success)
	assert.Equal(t, []string{"user with this email already exists."}, result.Errors["email"])
}

func TestService_Logout_ServerUnreachable(t *testing.T) {
	// Logged-in state against a server that is already gone
	server := newAuthServer(t, false)
	tokens := &memTokens{access: "a", refresh: "r", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)
	svc.Initialize(context.Background())
	require.True(t, svc.IsAuthenticated())

	server.Close()

	err := svc.Logout(context.Background())
	require.NoError(t, err)

	// Local session clears regardless of server reachability
	assert.False(t, svc.IsAuthenticated())
	assert.False(t, svc.IsAdmin())
	assert.False(t, svc.Initialized())
	assert.False(t, tokens.hasTokens())
}

func TestService_CheckAdmin_FailsClosed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/admin-check/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	svc.CheckAdmin(context.Background())
	assert.False(t, svc.IsAdmin())
}

func TestService_StartBackgroundInit_ExactlyOnce(t *testing.T) {
	var (
		mu           sync.Mutex
		profileCalls int
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		profileCalls++
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(api.User{ID: "user-1", Email: "user@shop.test"})
	})
	mux.HandleFunc("/users/admin-check/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AdminCheckResponse{IsAdmin: false})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{access: "a", refresh: "r", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	ctx := context.Background()
	svc.StartBackgroundInit(ctx)
	svc.StartBackgroundInit(ctx)
	svc.StartBackgroundInit(ctx)

	select {
	case <-svc.InitDone():
	case <-time.After(5 * time.Second):
		t.Fatal("background initialization did not complete")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, profileCalls)
	assert.True(t, svc.Initialized())
	assert.True(t, svc.IsAuthenticated())
}

func TestService_InitDone_NeverStarted(t *testing.T) {
	tokens := &memTokens{}
	svc := NewService(nil, tokens, nil)

	select {
	case <-svc.InitDone():
	default:
		t.Fatal("InitDone must be closed when no init was started")
	}
}

func TestService_UpdateProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var req api.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(api.User{ID: "user-1", Email: "user@shop.test", City: req.City})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{access: "a", refresh: "r", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	result := svc.UpdateProfile(context.Background(), api.UpdateProfileRequest{City: "Pune"})

	require.True(t, result.Success)
	user := svc.User()
	require.NotNil(t, user)
	assert.Equal(t, "Pune", user.City)
}

func TestService_ChangePassword_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/change-password/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Current password is incorrect"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tokens := &memTokens{access: "a", refresh: "r", has: true}
	svc := NewService(apiclient.NewClient(server.URL, tokens), tokens, nil)

	result := svc.ChangePassword(context.Background(), api.ChangePasswordRequest{
		OldPassword: "wrong-old",
		NewPassword: "newsecret99",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Current password is incorrect", result.Message)
}
