package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newEcho(t)
	session := &stubSession{claims: domain.SessionClaims{Login: "alice", ExpiresAt: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)}}
	client := &stubClient{
		loginFn: func(ctx context.Context, creds domain.Credentials) (string, error) {
			if creds.Login != "alice" || creds.Password != "secret" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			session.token = "tok"
			return "tok", nil
		},
	}
	h := NewSessionHandler(client, session, nopLog)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(`{"login":"alice","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != true || resp["login"] != "alice" || resp["expires_at"] != "2026-10-20T00:00:00Z" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_Login_MissingFieldSendsNothing(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{}
	h := NewSessionHandler(client, &stubSession{}, nopLog)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(`{"login":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	err := h.Login(e.NewContext(req, httptest.NewRecorder()))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("backend must not be called")
	}
}

func TestSessionHandler_Login_BackendErrorPassesThrough(t *testing.T) {
	e := newEcho(t)
	rejected := &domain.APIError{Kind: domain.ErrAuthentication, Op: "login", StatusCode: http.StatusUnauthorized}
	client := &stubClient{
		loginFn: func(context.Context, domain.Credentials) (string, error) { return "", rejected },
	}
	h := NewSessionHandler(client, &stubSession{}, nopLog)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader(`{"login":"alice","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	err := h.Login(e.NewContext(req, httptest.NewRecorder()))
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestSessionHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho(t)
	h := NewSessionHandler(&stubClient{}, &stubSession{}, nopLog)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	err := h.Login(e.NewContext(req, httptest.NewRecorder()))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSessionHandler_StatusAndLogout(t *testing.T) {
	e := newEcho(t)
	session := &stubSession{token: "tok", claims: domain.SessionClaims{Login: "alice"}}
	h := NewSessionHandler(&stubClient{}, session, nopLog)

	rec := httptest.NewRecorder()
	if err := h.Status(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil), rec)); err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
		t.Fatalf("expected authenticated, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	if err := h.Logout(e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil), rec)); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent || !session.cleared {
		t.Fatalf("expected 204 and cleared session, got %d cleared=%v", rec.Code, session.cleared)
	}

	rec = httptest.NewRecorder()
	_ = h.Status(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil), rec))
	if strings.TrimSpace(rec.Body.String()) != `{"authenticated":false}` {
		t.Fatalf("expected anonymous status, got %s", rec.Body.String())
	}
}

func TestSessionHandler_Register(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{
		registerFn: func(context.Context, domain.Credentials) (*domain.RegisterResult, error) {
			return &domain.RegisterResult{Message: "Account created successfully"}, nil
		},
	}
	h := NewSessionHandler(client, &stubSession{}, nopLog)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(`{"login":"bob","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), "Account created successfully") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestSessionHandler_Containers(t *testing.T) {
	e := newEcho(t)
	ping := 0.5
	client := &stubClient{
		listFn: func(context.Context) ([]domain.Container, error) {
			return []domain.Container{
				{ID: 1, IPAddress: "10.0.0.1", Status: true, PingTime: &ping},
				{ID: 2, IPAddress: "10.0.0.2"},
			}, nil
		},
	}
	h := NewSessionHandler(client, &stubSession{token: "tok"}, nopLog)

	rec := httptest.NewRecorder()
	if err := h.Containers(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/containers", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []containerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp))
	}
	if resp[0].Labels.Status != "Online" || resp[0].Labels.PingTime != "0.5" {
		t.Fatalf("unexpected first labels: %+v", resp[0].Labels)
	}
	if resp[1].Labels.Status != "Offline" || resp[1].Labels.PingTime != domain.NotAvailable || resp[1].Labels.LastPing != domain.NotAvailable {
		t.Fatalf("unexpected second labels: %+v", resp[1].Labels)
	}
}
