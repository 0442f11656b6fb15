// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/middleware"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// LoginHandler verifies email/password and issues a session token, returned
// both in the body and as the HTTP-only access_token cookie.
// @Summary     Log in
// @Description Verifies credentials and returns an access token; also sets the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.Tokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: err.Error()})
		}

		user, err := store.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "invalid credentials"})
		}
		if err := service.AuthenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(*user, tokens.TTL())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: "failed to issue token"})
		}

		maxAge := int(tokens.TTL().Seconds())
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   maxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   maxAge,
		})
	}
}
