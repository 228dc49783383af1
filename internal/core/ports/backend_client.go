package ports

import (
	"context"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

// BackendClient is the remote API the views talk to. Failures are returned
// as *domain.APIError.
type BackendClient interface {
	Register(ctx context.Context, creds domain.Credentials) (*domain.RegisterResult, error)
	// Login authenticates and stores the returned token in the session.
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	ListContainers(ctx context.Context) ([]domain.Container, error)
}

// SessionManager is the session surface used by the HTTP layer.
type SessionManager interface {
	Token() string
	Authenticated() bool
	Claims() (domain.SessionClaims, bool)
	Clear(ctx context.Context) error
}
