package handler

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

type stubClient struct {
	registerFn func(ctx context.Context, creds domain.Credentials) (*domain.RegisterResult, error)
	loginFn    func(ctx context.Context, creds domain.Credentials) (string, error)
	listFn     func(ctx context.Context) ([]domain.Container, error)

	calls int
}

func (s *stubClient) Register(ctx context.Context, creds domain.Credentials) (*domain.RegisterResult, error) {
	s.calls++
	return s.registerFn(ctx, creds)
}

func (s *stubClient) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	s.calls++
	return s.loginFn(ctx, creds)
}

func (s *stubClient) ListContainers(ctx context.Context) ([]domain.Container, error) {
	s.calls++
	return s.listFn(ctx)
}

type stubSession struct {
	token   string
	claims  domain.SessionClaims
	cleared bool
}

func (s *stubSession) Token() string       { return s.token }
func (s *stubSession) Authenticated() bool { return s.token != "" }

func (s *stubSession) Claims() (domain.SessionClaims, bool) {
	if s.token == "" {
		return domain.SessionClaims{}, false
	}
	return s.claims, true
}

func (s *stubSession) Clear(context.Context) error {
	s.token = ""
	s.cleared = true
	return nil
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	tpl, err := NewTemplates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	e.Renderer = tpl
	return e
}

var nopLog = zerolog.Nop()

const testDelay = 2 * time.Second
