package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a structured failure response from the storefront API.
// Message carries the server's error text; Fields carries field-level
// validation errors exactly as the server sent them, for form display.
type Error struct {
	Fields  map[string][]string
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("server error (%d): validation failed", e.Status)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

// ConnectivityError means the request never reached the server: DNS
// failure, refused connection, timeout. It is always distinct from an
// authorization failure so callers can tell "offline" from "logged out".
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is an HTTP 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsConnectivity reports whether err means the server was never reached.
func IsConnectivity(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}

// FieldErrors extracts server-side validation errors from err, or nil.
func FieldErrors(err error) map[string][]string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}

// ErrorMessage returns the server's error text from err, or fallback.
func ErrorMessage(err error, fallback string) string {
	var connErr *ConnectivityError
	if errors.As(err, &connErr) {
		return "Network error. Please check your connection."
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
