// Package common defines shared constants and sentinel errors used across
// the portal client. Callers should use errors.Is / errors.As to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Guard rejection: the session is not (yet) authenticated. Expected
	// control-flow outcome, not a true failure.
	ErrUnauthenticated = errors.New("unauthenticated")

	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
)

// AuthenticationError is returned from an explicit login attempt. Message
// carries the backend-provided detail when available, else a generic text.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return "authentication failed: " + e.Message
	}
	return "authentication failed"
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// MutationError reports a backend-rejected write. Detail is the backend's
// human-readable message, surfaced verbatim for user-facing display.
type MutationError struct {
	Detail string
	Err    error
}

func (e *MutationError) Error() string {
	if e.Detail != "" {
		return "mutation rejected: " + e.Detail
	}
	return "mutation failed"
}

func (e *MutationError) Unwrap() error { return e.Err }

// StorageError reports a persisted-state read/write failure. Recoverable:
// session initialization treats it as "no persisted state".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// APIError is a non-2xx backend response outside the auth/not-found cases.
// Detail carries the backend error envelope's "detail" field when present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Unwrap maps well-known status codes onto the package sentinels so callers
// can use errors.Is without losing the backend detail.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthenticated
	case 404:
		return ErrNotFound
	}
	return nil
}

// Detail extracts the backend-supplied detail string from err, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
