// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/store"
)

// ListUsersHandler lists every account (admin only).
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, api.UserResponse{
				ID:           u.ID,
				Username:     u.Username,
				Email:        u.Email,
				FullName:     u.FullName,
				IsAdmin:      u.IsAdmin,
				AuthProvider: u.AuthProvider,
				CreatedAt:    u.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
