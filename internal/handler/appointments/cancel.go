// File: internal/handler/appointments/cancel.go
package appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/middleware"
	"citas-api/internal/service"
)

// CancelHandler deletes one of the session user's appointments. Appointments
// owned by others answer 404 just like missing ones.
// @Summary     Cancel an appointment
// @Tags        appointments
// @Produce     json
// @Param       id path int true "appointment id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /appointments/{id} [delete]
func CancelHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid appointment id"})
		}

		date, err := service.Cancel(c.Request().Context(), db, user.ID, id)
		if err != nil {
			if errors.Is(err, service.ErrAppointmentNotFound) {
				return c.JSON(http.StatusNotFound, api.HTTPError{Message: "appointment not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		rdb.Del(c.Request().Context(), cache.AvailabilityKey(date.Format(service.DateLayout)))

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "appointment cancelled"})
	}
}
