// File: internal/handler/appointments/list.go
package appointments

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/middleware"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// ListHandler lists the session user's appointments with reason names.
// @Summary     My appointments
// @Tags        appointments
// @Produce     json
// @Success     200 {array} api.AppointmentResponse
// @Failure     401 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /appointments [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		appts, err := store.ListAppointmentsByUser(c.Request().Context(), db, user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		resp := make([]api.AppointmentResponse, 0, len(appts))
		for _, a := range appts {
			resp = append(resp, api.AppointmentResponse{
				ID:     a.ID,
				Date:   a.Date.Format(service.DateLayout),
				Time:   a.Time,
				Reason: a.Reason,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
