package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/lelouchhh/vk-2025/internal/core/ports"
)

// SessionClaims exposes the login of the console session as "login" in the
// context. The claims are decoded without verification and only feed the
// page header.
func SessionClaims(session ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := session.Claims(); ok && claims.Login != "" {
				c.Set("login", claims.Login)
			}
			return next(c)
		}
	}
}
