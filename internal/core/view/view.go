// Package view holds the presentational state machines of the console:
// Login, Register and Containers. A view is built per request, drives one
// backend call and exposes what the page should render. Rendering itself
// lives in the HTTP layer.
package view

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

// State is the position of a form view in its lifecycle.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User-facing messages. Every failure kind collapses into one of these.
const (
	MsgLoginFailed      = "Invalid login or password"
	MsgRegisterFailed   = "Registration failed. Please try again."
	MsgRegistered       = "Account created! Redirecting to login..."
	MsgContainersFailed = "Failed to fetch containers"
	MsgFieldsRequired   = "Login and password are required"
)

var validate = validator.New()

// checkCredentials enforces presence of both fields.
func checkCredentials(creds domain.Credentials) error {
	if err := validate.Struct(creds); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	return nil
}
