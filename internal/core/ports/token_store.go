package ports

import "context"

// TokenStore is durable, single-slot storage for the session token.
// Load returns an empty string when no token is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Pinger is implemented by stores backed by a remote service so readiness
// probes can check them.
type Pinger interface {
	Ping(ctx context.Context) error
}
