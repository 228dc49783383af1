package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// Session holds the one bearer token of this console instance. It is the
// only state shared between requests: it is read before every protected
// backend call and written only by login and logout.
type Session struct {
	// writeMu orders writers across the store call and the assignment, so
	// the attached token always matches the last persisted one. mu alone
	// guards token and is never held during store I/O.
	writeMu sync.Mutex
	mu      sync.RWMutex
	token   string
	store   ports.TokenStore
	log     zerolog.Logger
}

func NewSession(store ports.TokenStore, log zerolog.Logger) *Session {
	return &Session{store: store, log: log}
}

// Restore re-applies a previously persisted token so the session resumes
// without a new login. Call once on start.
func (s *Session) Restore(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	token, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token != "" {
		s.log.Info().Msg("session restored from token store")
	}
	return nil
}

// SetToken persists and attaches a token. An empty token clears both the
// attached and the persisted copy.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.log.Debug().Msg("session token set")
	return nil
}

// Clear logs out: the token is detached first, then removed from the store.
func (s *Session) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.Debug().Msg("session cleared")
	return nil
}

// Token returns the attached token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Claims decodes the token's login and expiry claims without verifying the
// signature. ok is false when logged out or the token is not a JWT.
func (s *Session) Claims() (claims domain.SessionClaims, ok bool) {
	token := s.Token()
	if token == "" {
		return domain.SessionClaims{}, false
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return domain.SessionClaims{}, false
	}

	claims.Login, _ = mc["login"].(string)
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time.In(time.UTC)
	}
	return claims, true
}
