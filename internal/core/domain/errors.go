package domain

import (
	"errors"
	"fmt"
)

// Failure kinds reported by the backend client.
var (
	ErrNetwork         = errors.New("backend unreachable")
	ErrServerRejection = errors.New("backend rejected request")
	ErrAuthentication  = errors.New("authentication failed")
)

// ErrInvalidCredentials is returned when a credentials form is missing a field.
var ErrInvalidCredentials = errors.New("login and password are required")

// APIError describes a failed backend call. Kind is one of ErrNetwork,
// ErrServerRejection or ErrAuthentication, so callers can branch with
// errors.Is without inspecting status codes.
type APIError struct {
	Kind       error
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v (status %d): %s", e.Op, e.Kind, e.StatusCode, msg)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, msg)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
