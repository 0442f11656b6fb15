// File: internal/handler/appointments/available.go
package appointments

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/service"
)

// availabilityTTL bounds staleness of cached availability; every booking,
// cancellation and slot mutation also invalidates the date's key directly.
const availabilityTTL = 30 * time.Second

// AvailableHandler lists the free times for a date.
// @Summary     Free times for a date
// @Description Admin-declared slots minus the times already booked, in slot order
// @Tags        appointments
// @Produce     json
// @Param       date query string true "date (YYYY-MM-DD)"
// @Success     200 {object} api.AvailableTimesResponse
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /appointments/available [get]
func AvailableHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		dateStr := c.QueryParam("date")
		date, err := service.ParseDate(dateStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid date format, expected YYYY-MM-DD"})
		}

		key := cache.AvailabilityKey(dateStr)
		if raw, err := rdb.Get(ctx, key).Result(); err == nil {
			var times []string
			if err := json.Unmarshal([]byte(raw), &times); err == nil {
				return c.JSON(http.StatusOK, api.AvailableTimesResponse{Date: dateStr, Times: times})
			}
		}

		times, err := service.AvailableTimes(ctx, db, date)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}
		if raw, err := json.Marshal(times); err == nil {
			rdb.Set(ctx, key, raw, availabilityTTL)
		}

		return c.JSON(http.StatusOK, api.AvailableTimesResponse{Date: dateStr, Times: times})
	}
}
