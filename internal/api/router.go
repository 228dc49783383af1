package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/lelouchhh/vk-2025/docs"
	"github.com/lelouchhh/vk-2025/internal/api/handler"
	"github.com/lelouchhh/vk-2025/internal/api/middleware"
	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// Deps is everything the console router needs.
type Deps struct {
	Client                ports.BackendClient
	Session               ports.SessionManager
	Store                 ports.TokenStore
	StoreName             string
	RegisterRedirectDelay time.Duration
	Log                   zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the global
	// Prometheus registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	templates, err := handler.NewTemplates()
	if err != nil {
		return nil, err
	}
	e.Renderer = templates
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	registerer := d.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	// --- Dependencies ---
	pages := handler.NewPageHandler(d.Client, d.Session, d.RegisterRedirectDelay, d.Log)
	sessionAPI := handler.NewSessionHandler(d.Client, d.Session, d.Log)
	health := handler.NewHealthHandler(d.Store, d.StoreName)

	// --- Pages ---
	web := e.Group("", middleware.SessionClaims(d.Session))
	web.GET("/", pages.Index)
	web.GET("/login", pages.LoginForm)
	web.POST("/login", pages.Login)
	web.GET("/register", pages.RegisterForm)
	web.POST("/register", pages.Register)
	web.GET("/containers", pages.Containers)
	web.POST("/logout", pages.Logout)

	// --- JSON API ---
	v1 := e.Group("/api/v1")
	v1.GET("/session", sessionAPI.Status)
	v1.POST("/session", sessionAPI.Login)
	v1.DELETE("/session", sessionAPI.Logout)
	v1.POST("/register", sessionAPI.Register)
	v1.GET("/containers", sessionAPI.Containers)

	// --- Health probes, metrics, docs ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
