package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/api/metrics"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// SessionHandler is the JSON face of the console. It drives the same
// backend client and session as the HTML pages.
type SessionHandler struct {
	client  ports.BackendClient
	session ports.SessionManager
	log     zerolog.Logger
}

func NewSessionHandler(client ports.BackendClient, session ports.SessionManager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{client: client, session: session, log: log}
}

// Status reports whether the console holds a session token.
//
// @Summary      Session status
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/v1/session [get]
func (h *SessionHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.session))
}

// Login authenticates against the backend and stores the session token.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/v1/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.client.Login(c.Request().Context(), toCredentials(req.Login, req.Password)); err != nil {
		return err
	}
	metrics.SessionActive.Set(1)

	return c.JSON(http.StatusOK, toSessionResponse(h.session))
}

// Logout drops the session token.
//
// @Summary      Logout
// @Tags         session
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.Clear(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionActive.Set(0)
	return c.NoContent(http.StatusNoContent)
}

// Register creates a backend account. It does not log in.
//
// @Summary      Register
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Account credentials"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/v1/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.client.Register(c.Request().Context(), toCredentials(req.Login, req.Password))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{Message: res.Message})
}

// Containers lists the container records the backend reports.
//
// @Summary      List containers
// @Tags         containers
// @Produce      json
// @Success      200  {array}   containerResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/v1/containers [get]
func (h *SessionHandler) Containers(c echo.Context) error {
	items, err := h.client.ListContainers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toContainerResponses(items))
}
