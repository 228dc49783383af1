package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestPages_LoginSuccessRedirects(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{
		loginFn: func(context.Context, domain.Credentials) (string, error) { return "tok", nil },
	}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	req := formRequest("/login", url.Values{"login": {"alice"}, "password": {"secret"}})
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/containers" {
		t.Fatalf("expected redirect to /containers, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestPages_LoginEmptyFieldSendsNothing(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	req := formRequest("/login", url.Values{"login": {"alice"}})
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected no backend call, got %d", client.calls)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `name="login"`) {
		t.Fatalf("expected the login form, got %d", rec.Code)
	}
}

func TestPages_LoginFailureShowsGenericMessage(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{
		loginFn: func(context.Context, domain.Credentials) (string, error) {
			return "", &domain.APIError{Kind: domain.ErrAuthentication, Op: "login", StatusCode: http.StatusUnauthorized}
		},
	}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	req := formRequest("/login", url.Values{"login": {"alice"}, "password": {"bad"}})
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid login or password") {
		t.Fatalf("expected generic message, got %s", body)
	}
	if !strings.Contains(body, `value="alice"`) {
		t.Fatalf("expected login to be echoed back")
	}
}

func TestPages_RegisterSuccessSchedulesRedirect(t *testing.T) {
	e := newEcho(t)
	loggedIn := false
	client := &stubClient{
		registerFn: func(context.Context, domain.Credentials) (*domain.RegisterResult, error) {
			return &domain.RegisterResult{}, nil
		},
		loginFn: func(context.Context, domain.Credentials) (string, error) {
			loggedIn = true
			return "", nil
		},
	}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	req := formRequest("/register", url.Values{"login": {"bob"}, "password": {"secret"}})
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Account created! Redirecting to login...") {
		t.Fatalf("expected confirmation, got %s", body)
	}
	if !strings.Contains(body, `content="2;url=/login"`) {
		t.Fatalf("expected a 2s refresh to /login, got %s", body)
	}
	if loggedIn {
		t.Fatalf("registration must not log in")
	}
}

func TestPages_RegisterConflict(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{
		registerFn: func(context.Context, domain.Credentials) (*domain.RegisterResult, error) {
			return nil, &domain.APIError{Kind: domain.ErrServerRejection, Op: "register", StatusCode: http.StatusConflict}
		},
	}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	req := formRequest("/register", url.Values{"login": {"bob"}, "password": {"secret"}})
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Registration failed. Please try again.") {
		t.Fatalf("expected failure message, got %s", body)
	}
	if strings.Contains(body, "http-equiv") {
		t.Fatalf("failure must not schedule a redirect")
	}
}

func TestPages_ContainersTable(t *testing.T) {
	e := newEcho(t)
	ping := 0.012
	last := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	client := &stubClient{
		listFn: func(context.Context) ([]domain.Container, error) {
			return []domain.Container{
				{ID: 1, IPAddress: "172.18.0.2", LastPing: last, Status: true, PingTime: &ping},
				{ID: 2, IPAddress: "172.18.0.3", LastPing: last},
			}, nil
		},
	}
	h := NewPageHandler(client, &stubSession{token: "tok"}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	if err := h.Containers(e.NewContext(httptest.NewRequest(http.MethodGet, "/containers", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if n := strings.Count(body, "<tr><td>"); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	for _, want := range []string{"172.18.0.2", "Online", "0.012", "172.18.0.3", "Offline", "N/A", "2026-10-01T12:00:00Z"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
	if strings.Contains(body, "Loading...") || strings.Contains(body, "Failed to fetch containers") {
		t.Fatalf("exactly one render state expected")
	}
	if client.calls != 1 {
		t.Fatalf("expected one fetch, got %d", client.calls)
	}
}

func TestPages_ContainersUnauthorized(t *testing.T) {
	e := newEcho(t)
	client := &stubClient{
		listFn: func(context.Context) ([]domain.Container, error) {
			return nil, &domain.APIError{Kind: domain.ErrAuthentication, Op: "list containers", StatusCode: http.StatusUnauthorized}
		},
	}
	h := NewPageHandler(client, &stubSession{}, testDelay, nopLog)

	rec := httptest.NewRecorder()
	if err := h.Containers(e.NewContext(httptest.NewRequest(http.MethodGet, "/containers", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Failed to fetch containers") {
		t.Fatalf("expected error message, got %s", body)
	}
	if strings.Contains(body, "<table>") {
		t.Fatalf("table must not render on error")
	}
}

func TestPages_LogoutClearsSession(t *testing.T) {
	e := newEcho(t)
	session := &stubSession{token: "tok"}
	h := NewPageHandler(&stubClient{}, session, testDelay, nopLog)

	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !session.cleared || session.Authenticated() {
		t.Fatalf("session not cleared")
	}
	if rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %q", rec.Header().Get(echo.HeaderLocation))
	}
}
