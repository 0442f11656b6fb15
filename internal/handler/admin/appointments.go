// File: internal/handler/admin/appointments.go
package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// ListAppointmentsHandler lists all appointments with owner names.
// @Summary     List all appointments
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.AppointmentResponse
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/appointments [get]
func ListAppointmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		appts, err := store.ListAppointments(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		resp := make([]api.AppointmentResponse, 0, len(appts))
		for _, a := range appts {
			resp = append(resp, api.AppointmentResponse{
				ID:       a.ID,
				Date:     a.Date.Format(service.DateLayout),
				Time:     a.Time,
				Reason:   a.Reason,
				UserName: a.UserName,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
