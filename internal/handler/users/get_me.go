// File: internal/handler/users/get_me.go
package users

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/middleware"
)

// GetMyUserHandler returns the authenticated user's profile.
// @Summary     Current user profile
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			FullName:     user.FullName,
			IsAdmin:      user.IsAdmin,
			AuthProvider: user.AuthProvider,
			CreatedAt:    user.CreatedAt,
		})
	}
}
