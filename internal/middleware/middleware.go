package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"citas-api/internal/database"
	"citas-api/internal/model"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// ContextUserKey is where resolvers store the authenticated *model.User.
const ContextUserKey = "user"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "access_token"

// resolveUser is the single validation core shared by both entry points:
// verify the token, then load the user it names. Any failure is a 401 and
// nothing is stored in the context.
func resolveUser(c echo.Context, db database.DB, tokens *service.Tokens, token string) (*model.User, error) {
	claims, err := tokens.Verify(token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "user not found")
	}
	return user, nil
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth resolves the session from the Authorization header only.
func RequireAuth(db database.DB, tokens *service.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			user, err := resolveUser(c, db, tokens, token)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireSession resolves the session from the access_token cookie only.
func RequireSession(db database.DB, tokens *service.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			user, err := resolveUser(c, db, tokens, cookie.Value)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the admin flag. It composes after a
// resolver and never substitutes for one.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(ContextUserKey).(*model.User)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
		}
		if !user.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	}
}

// CurrentUser returns the resolved user, or nil outside a resolver chain.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
