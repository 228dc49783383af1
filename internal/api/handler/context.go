package handler

import "github.com/labstack/echo/v4"

// ctxLogin returns the display login injected by the SessionClaims
// middleware, or "" for an anonymous request.
func ctxLogin(c echo.Context) string {
	login, _ := c.Get("login").(string)
	return login
}
