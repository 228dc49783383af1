package domain

import "time"

// Credentials is the transient (login, password) pair collected by the
// login and registration forms. It is never persisted.
type Credentials struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionClaims are the display-only claims decoded from a JWT session token.
// They are not verified; the backend remains the only judge of validity.
type SessionClaims struct {
	Login     string
	ExpiresAt time.Time
}

// RegisterResult is whatever the backend answered to a successful registration.
type RegisterResult struct {
	Message string `json:"message"`
}
