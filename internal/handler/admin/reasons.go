// File: internal/handler/admin/reasons.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/model"
	"citas-api/internal/store"
)

// CreateReasonHandler adds a bookable reason.
// @Summary     Add a reason
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.CreateReasonRequest true "reason data"
// @Success     201 {object} api.ReasonResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/reasons [post]
func CreateReasonHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReasonRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: err.Error()})
		}

		reason := &model.Reason{Name: req.Name}
		if _, err := store.CreateReason(c.Request().Context(), db, reason); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "reason already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.ReasonResponse{ID: reason.ID, Name: reason.Name})
	}
}

// DeleteReasonHandler removes a reason. Existing appointments keep no
// dangling reference; their reason reads back as empty.
// @Summary     Delete a reason
// @Tags        admin
// @Produce     json
// @Param       id path int true "reason id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/reasons/{id} [delete]
func DeleteReasonHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid reason id"})
		}

		if err := store.DeleteReason(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.HTTPError{Message: "reason not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "reason deleted"})
	}
}
