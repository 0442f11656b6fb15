// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/model"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// RegisterHandler creates a local account.
// @Summary     Register a new user
// @Description Creates a local account; username and email must be unused
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration data"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Username:     req.Username,
			Email:        req.Email,
			FullName:     req.FullName,
			PasswordHash: &hash,
			AuthProvider: model.AuthProviderLocal,
		}
		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "username or email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		resp := api.UserResponse{
			ID:           created.ID,
			Username:     created.Username,
			Email:        created.Email,
			FullName:     created.FullName,
			IsAdmin:      created.IsAdmin,
			AuthProvider: created.AuthProvider,
			CreatedAt:    created.CreatedAt,
		}
		return c.JSON(http.StatusCreated, resp)
	}
}
