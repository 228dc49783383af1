package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{
			name: "auth rejection",
			err:  &domain.APIError{Kind: domain.ErrAuthentication, Op: "login", StatusCode: 401, Message: "Invalid login or password"},
			code: http.StatusUnauthorized,
			msg:  "Invalid login or password",
		},
		{
			name: "server rejection",
			err:  &domain.APIError{Kind: domain.ErrServerRejection, Op: "register", StatusCode: 409},
			code: http.StatusBadGateway,
			msg:  "backend rejected the request",
		},
		{
			name: "network",
			err:  &domain.APIError{Kind: domain.ErrNetwork, Op: "list containers", Err: errors.New("connection refused")},
			code: http.StatusServiceUnavailable,
			msg:  "backend unreachable",
		},
		{
			name: "missing credentials",
			err:  domain.ErrInvalidCredentials,
			code: http.StatusUnprocessableEntity,
			msg:  "login and password are required",
		},
		{
			name: "echo error",
			err:  echo.NewHTTPError(http.StatusBadRequest, "invalid payload"),
			code: http.StatusBadRequest,
			msg:  "invalid payload",
		},
		{
			name: "unexpected",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			msg:  "internal server error",
		},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/containers", nil), rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid json: %v", tc.name, err)
		}
		if body.Error != tc.msg {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.msg, body.Error)
		}
	}
}
