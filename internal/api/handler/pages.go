package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/api/metrics"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
	"github.com/lelouchhh/vk-2025/internal/core/view"
)

// PageHandler serves the server-rendered Login, Register and Containers pages.
type PageHandler struct {
	client        ports.BackendClient
	session       ports.SessionManager
	redirectDelay time.Duration
	log           zerolog.Logger
}

func NewPageHandler(client ports.BackendClient, session ports.SessionManager, redirectDelay time.Duration, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		client:        client,
		session:       session,
		redirectDelay: redirectDelay,
		log:           log,
	}
}

// page is the data every template gets. Authenticated follows the session
// token; User is the login claim, shown only when the token carries one.
type page struct {
	Title         string
	Authenticated bool
	User          string
	Refresh       *refresh
	View          any
}

type refresh struct {
	Seconds int
	To      string
}

func (h *PageHandler) render(c echo.Context, name, title string, v any, r *refresh) error {
	return c.Render(http.StatusOK, name, page{
		Title:         title,
		Authenticated: h.session.Authenticated(),
		User:          ctxLogin(c),
		Refresh:       r,
		View:          v,
	})
}

func (h *PageHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/containers")
}

func (h *PageHandler) LoginForm(c echo.Context) error {
	return h.render(c, "login", "Login", view.NewLogin(h.client), nil)
}

// Login submits the login form. Success navigates to the containers page.
func (h *PageHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	v := view.NewLogin(h.client)
	v.Submit(c.Request().Context(), toCredentials(form.Login, form.Password))
	metrics.ViewRendersTotal.WithLabelValues("login", v.State.String()).Inc()

	if v.Succeeded() {
		metrics.SessionActive.Set(1)
		return c.Redirect(http.StatusSeeOther, "/containers")
	}
	if v.State == view.StateFailed {
		h.log.Warn().Err(v.Err).Str("login", v.Login).Msg("login failed")
	}
	return h.render(c, "login", "Login", v, nil)
}

func (h *PageHandler) RegisterForm(c echo.Context) error {
	return h.render(c, "register", "Register", view.NewRegister(h.client, h.redirectDelay), nil)
}

// Register submits the registration form. Success shows a confirmation and
// refreshes to the login page; the user is not logged in.
func (h *PageHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	v := view.NewRegister(h.client, h.redirectDelay)
	v.Submit(c.Request().Context(), toCredentials(form.Login, form.Password))
	metrics.ViewRendersTotal.WithLabelValues("register", v.State.String()).Inc()

	var r *refresh
	if v.Success {
		r = &refresh{Seconds: v.RedirectSeconds(), To: v.RedirectTo}
	} else if v.State == view.StateFailed {
		h.log.Warn().Err(v.Err).Str("login", v.Login).Msg("registration failed")
	}
	return h.render(c, "register", "Register", v, r)
}

// Containers renders the container table. The list is fetched once per
// page view.
func (h *PageHandler) Containers(c echo.Context) error {
	v := view.NewContainers(h.client)
	v.Mount(c.Request().Context())
	metrics.ViewRendersTotal.WithLabelValues("containers", v.Phase.String()).Inc()

	if v.Failed() {
		h.log.Warn().Err(v.Err).Msg("fetch containers failed")
	}
	return h.render(c, "containers", "Containers", v, nil)
}

// Logout clears the session and goes back to the login page.
func (h *PageHandler) Logout(c echo.Context) error {
	if err := h.session.Clear(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionActive.Set(0)
	return c.Redirect(http.StatusSeeOther, "/login")
}
