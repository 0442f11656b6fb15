// File: internal/handler/appointments/create.go
package appointments

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/middleware"
	"citas-api/internal/notify"
	"citas-api/internal/service"
	"citas-api/internal/worker"
)

// CreateHandler books an appointment for the session user. A confirmation
// mail is handed to the worker pool after the write commits.
// @Summary     Book an appointment
// @Description Books the given date/time for the current user; reason is optional (id or name)
// @Tags        appointments
// @Accept      json
// @Produce     json
// @Param       request body api.CreateAppointmentRequest true "booking data"
// @Success     201 {object} api.AppointmentResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /appointments [post]
func CreateHandler(db database.DB, rdb cache.Cache, wp worker.Pool, mailer notify.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		var req api.CreateAppointmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: err.Error()})
		}

		date, err := service.ParseDate(req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid date format, expected YYYY-MM-DD"})
		}
		clock, err := service.ParseClock(req.Time)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid time format, expected HH:MM"})
		}

		detail, err := service.Book(c.Request().Context(), db, user, date, clock, req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrReasonNotFound):
				return c.JSON(http.StatusNotFound, api.HTTPError{Message: "reason not found"})
			case errors.Is(err, service.ErrSlotTaken):
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "time slot already booked"})
			default:
				return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
			}
		}

		rdb.Del(c.Request().Context(), cache.AvailabilityKey(req.Date))

		to := user.Email
		wp.Submit(func() {
			subject, body := notify.BookingConfirmation(user, detail)
			_ = mailer.Send(to, subject, body)
		})

		return c.JSON(http.StatusCreated, api.AppointmentResponse{
			ID:     detail.ID,
			Date:   req.Date,
			Time:   detail.Time,
			Reason: detail.Reason,
		})
	}
}
