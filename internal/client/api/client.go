package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dkolesov/shopfront/internal/client/storage"
	"github.com/dkolesov/shopfront/pkg/api"
)

const refreshPath = "/users/token/refresh/"

const (
	// requestTimeout bounds every normal request
	requestTimeout = 15 * time.Second
	// refreshTimeout bounds the refresh sub-call; refresh must fail fast
	// rather than hang the whole retry chain
	refreshTimeout = 5 * time.Second
)

// Client is the single outbound channel for every call to the storefront
// backend. It attaches the stored access token as a bearer credential and
// transparently refreshes it once per request on an authorization failure.
type Client struct {
	httpClient    *http.Client
	refreshClient *http.Client
	tokens        storage.TokenStorage
	baseURL       string
}

// NewClient creates a new API client. tokens may be nil for a client that
// only ever makes anonymous calls.
func NewClient(baseURL string, tokens storage.TokenStorage) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the bearer credential across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
		refreshClient: &http.Client{
			Timeout: refreshTimeout,
		},
	}
}

// do runs one logical request through the pipeline: marshal the body once,
// attach the access token if present, send, and on a first 401 attempt a
// single refresh-and-retry. The retried response is returned to the caller
// as if it were the first one; a second 401 is never refreshed again.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = jsonData
	}

	status, respBody, err := c.send(ctx, c.httpClient, method, path, payload, c.accessToken(ctx))
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		newToken, ok := c.refreshAccessToken(ctx)
		if !ok {
			// Refresh unavailable or failed: surface the original 401.
			// Redirecting on auth loss is the caller's job, not ours.
			return decodeError(status, respBody)
		}

		status, respBody, err = c.send(ctx, c.httpClient, method, path, payload, newToken)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return decodeError(status, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// send performs a single HTTP exchange. A transport-level failure (the
// request never produced a response) comes back as *ConnectivityError.
func (c *Client) send(
	ctx context.Context,
	httpClient *http.Client,
	method, path string,
	payload []byte,
	token string,
) (int, []byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, &ConnectivityError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// accessToken reads the stored access token, or "" if none exists.
func (c *Client) accessToken(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.GetAccessToken(ctx)
	if err != nil {
		return ""
	}
	return token
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token. Returns ok=false when no refresh token exists (the original 401
// stands untouched) or when the refresh call fails, in which case both
// token slots are cleared: the session is unrecoverable.
func (c *Client) refreshAccessToken(ctx context.Context) (string, bool) {
	if c.tokens == nil {
		return "", false
	}

	refresh, err := c.tokens.GetRefreshToken(ctx)
	if err != nil || refresh == "" {
		return "", false
	}

	payload, err := json.Marshal(api.RefreshRequest{Refresh: refresh})
	if err != nil {
		return "", false
	}

	status, respBody, err := c.send(ctx, c.refreshClient, http.MethodPost, refreshPath, payload, "")
	if err != nil || status != http.StatusOK {
		c.clearTokens(ctx)
		return "", false
	}

	var resp api.RefreshResponse
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.Access == "" {
		c.clearTokens(ctx)
		return "", false
	}

	if err := c.tokens.SaveAccessToken(ctx, resp.Access); err != nil {
		slog.Warn("failed to store refreshed access token", "error", err)
		// Still usable for this one retry
	}

	return resp.Access, true
}

func (c *Client) clearTokens(ctx context.Context) {
	if err := c.tokens.ClearTokens(ctx); err != nil {
		slog.Warn("failed to clear tokens after refresh failure", "error", err)
	}
}

// decodeError turns a non-2xx response body into a typed *Error. The
// server answers either with an {"error": "..."} envelope or, on form
// validation, with a field→messages map passed through verbatim.
func decodeError(status int, body []byte) error {
	apiErr := &Error{Status: status}

	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			apiErr.Message = envelope.Error
		} else if envelope.Detail != "" {
			apiErr.Message = envelope.Detail
		}
	}

	if apiErr.Message == "" {
		var fields map[string][]string
		if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
			apiErr.Fields = fields
		}
	}

	if apiErr.Message == "" && apiErr.Fields == nil {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}
