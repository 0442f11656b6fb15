// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/middleware"
)

// LogoutHandler expires the session cookie. Tokens themselves stay valid
// until their expiry; there is no server-side revocation.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
	}
}
