package github

import (
	"errors"
	"fmt"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// AuthenticationError represents a failure to construct an authenticated
// client, such as a missing access token.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string, err error) *AuthenticationError {
	return &AuthenticationError{
		Message: message,
		Err:     err,
	}
}

// IsAuthenticationError checks if an error is an AuthenticationError
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// RateLimitError is returned when the quota is exhausted and the client is
// configured to fail instead of waiting for the reset.
type RateLimitError struct {
	Remaining int
	ResetAt   time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (remaining: %d, resets at: %s)",
		e.Remaining, e.ResetAt.Format(time.RFC3339))
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(remaining int, resetAt time.Time) *RateLimitError {
	return &RateLimitError{
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

// IsRateLimitError checks if an error is a RateLimitError
func IsRateLimitError(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// APIError is the uniform shape every failing operation surfaces.
// Op names the operation and its target identifiers, Message carries the
// upstream failure text, and StatusCode is set when the failure carried an
// HTTP response.
type APIError struct {
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether an error is an APIError for a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// normalizeError converts any transport failure into an *APIError.
// HTTP failures contribute their status code, and the upstream message field
// is preferred over the generic transport message when present. The original
// error is preserved for Unwrap.
func normalizeError(op string, err error) *APIError {
	if err == nil {
		return &APIError{Op: op, Message: "unknown error"}
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = httpErr.Error()
		}
		return &APIError{
			Op:         op,
			Message:    msg,
			StatusCode: httpErr.StatusCode,
			Err:        err,
		}
	}

	return &APIError{Op: op, Message: err.Error(), Err: err}
}
