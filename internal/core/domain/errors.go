package domain

import (
	"errors"
	"fmt"
	"strings"
)

// NetworkError covers transport failures and timeouts. It is always
// retryable from the caller's point of view.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response with a structured message. The
// message is surfaced verbatim when user-safe.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

// ValidationError blocks progression locally and never reaches the
// network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError means server state moved under the client: a selected
// seat was booked elsewhere, or a referenced draft disappeared. The
// user must return to an earlier step.
type ConflictError struct {
	Message string
	Seats   []string
}

func (e *ConflictError) Error() string {
	if len(e.Seats) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Seats, ", "))
}

// AuthError means the token is missing or expired. The caller redirects
// to login; there is no silent retry with a stale token.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication required: %s", e.Reason)
}

func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

func IsServer(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}
