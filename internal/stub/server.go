// Package stub is an in-memory backend speaking the same HTTP contract as
// the real one: register, login and the protected container list. It backs
// local development and end-to-end tests of the console.
package stub

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lelouchhh/vk-2025/internal/api"
	"github.com/lelouchhh/vk-2025/internal/api/handler"
	"github.com/lelouchhh/vk-2025/internal/api/middleware"
	"github.com/lelouchhh/vk-2025/internal/core/domain"
)

type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	Containers []domain.Container
	Log        zerolog.Logger
}

type accountRequest struct {
	Login    string `json:"login"    validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

type server struct {
	accounts   *Accounts
	containers []domain.Container
	log        zerolog.Logger
}

// NewServer builds the stub backend.
func NewServer(cfg Config) *echo.Echo {
	s := &server{
		accounts:   NewAccounts(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost),
		containers: cfg.Containers,
		log:        cfg.Log,
	}
	if s.containers == nil {
		s.containers = []domain.Container{}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(cfg.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.POST("/register", s.register)
	e.POST("/login", s.login)

	protected := e.Group("/protected", middleware.Bearer(cfg.JWTSecret))
	protected.GET("/containers", s.listContainers)

	return e
}

func (s *server) register(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.accounts.Register(req.Login, req.Password); err != nil {
		if errors.Is(err, ErrAccountExists) {
			return echo.NewHTTPError(http.StatusConflict, "Login already taken")
		}
		s.log.Error().Err(err).Msg("register account")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register account")
	}

	s.log.Info().Str("login", req.Login).Msg("account registered")
	return c.JSON(http.StatusCreated, map[string]string{"message": "Account created successfully"})
}

func (s *server) login(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.accounts.Login(req.Login, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid login or password")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (s *server) listContainers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.containers)
}
