// Package backend is the HTTP client for the remote container API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/api/metrics"
	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

// Backend routes.
const (
	pathRegister   = "/register"
	pathLogin      = "/login"
	pathContainers = "/protected/containers"
)

// Operation names used in errors and metrics.
const (
	OpRegister       = "register"
	OpLogin          = "login"
	OpListContainers = "list_containers"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Session is the token slot the client reads before protected requests and
// writes after a successful login.
type Session interface {
	Token() string
	SetToken(ctx context.Context, token string) error
}

// Client talks to a single backend base URL. It sends one request per call:
// no retries and no client-side timeout beyond the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL string, session Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: session,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Register creates an account. Duplicate or invalid input comes back as
// domain.ErrServerRejection.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) (*domain.RegisterResult, error) {
	var result domain.RegisterResult
	err := c.do(ctx, OpRegister, http.MethodPost, pathRegister, credentialsRequest(creds), false, func(body []byte) error {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		// The body is arbitrary; a non-JSON answer still counts as success.
		_ = json.Unmarshal(body, &result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates, stores the returned token in the session and returns it.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp loginResponse
	err := c.do(ctx, OpLogin, http.MethodPost, pathLogin, credentialsRequest(creds), false, func(body []byte) error {
		if err := json.Unmarshal(body, &resp); err != nil {
			return err
		}
		if resp.Token == "" {
			return errors.New("response carries no token")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if err := c.session.SetToken(ctx, resp.Token); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListContainers fetches the container snapshot with the session token.
func (c *Client) ListContainers(ctx context.Context) ([]domain.Container, error) {
	var containers []domain.Container
	err := c.do(ctx, OpListContainers, http.MethodGet, pathContainers, nil, true, func(body []byte) error {
		return json.Unmarshal(body, &containers)
	})
	if err != nil {
		return nil, err
	}
	if containers == nil {
		containers = []domain.Container{}
	}
	return containers, nil
}

// do sends one request and hands a 2xx body to decode. Every failure is
// returned as *domain.APIError.
func (c *Client) do(ctx context.Context, op, method, path string, payload any, authenticated bool, decode func([]byte) error) (err error) {
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.BackendRequestsTotal.WithLabelValues(op, outcome(err)).Inc()
		if err != nil {
			c.log.Warn().Err(err).Str("operation", op).Msg("backend request failed")
		}
	}()

	var body io.Reader
	if payload != nil {
		buf, merr := json.Marshal(payload)
		if merr != nil {
			return &domain.APIError{Kind: domain.ErrServerRejection, Op: op, Err: merr}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrNetwork, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.APIError{
			Kind:       kindForStatus(resp.StatusCode),
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrNetwork, Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if err := decode(raw); err != nil {
		return &domain.APIError{
			Kind:       domain.ErrServerRejection,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    "malformed response",
			Err:        err,
		}
	}
	return nil
}

func kindForStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthentication
	default:
		return domain.ErrServerRejection
	}
}

// errorMessage extracts {"error": ...} or {"message": ...} from a failed
// response, falling back to the trimmed raw body.
func errorMessage(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil {
		if er.Error != "" {
			return er.Error
		}
		if er.Message != "" {
			return er.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrNetwork):
		return metrics.OutcomeNetwork
	case errors.Is(err, domain.ErrAuthentication):
		return metrics.OutcomeAuthError
	default:
		return metrics.OutcomeRejected
	}
}

// String is used in startup logs.
func (c *Client) String() string {
	return fmt.Sprintf("backend(%s)", c.baseURL)
}
