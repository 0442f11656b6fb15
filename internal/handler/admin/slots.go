// File: internal/handler/admin/slots.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/model"
	"citas-api/internal/service"
	"citas-api/internal/store"
)

// CreateSlotHandler declares a bookable date/time.
// @Summary     Add an available slot
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.CreateSlotRequest true "slot data"
// @Success     201 {object} api.SlotResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/slots [post]
func CreateSlotHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateSlotRequest
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

		slot := &model.Slot{Date: date, Time: clock}
		if _, err := store.CreateSlot(c.Request().Context(), db, slot); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "slot already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		rdb.Del(c.Request().Context(), cache.AvailabilityKey(req.Date))

		return c.JSON(http.StatusCreated, api.SlotResponse{
			ID:   slot.ID,
			Date: req.Date,
			Time: slot.Time,
		})
	}
}

// ListSlotsHandler lists every slot ordered by date then time.
// @Summary     List available slots
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.SlotResponse
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/slots [get]
func ListSlotsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		slots, err := store.ListSlots(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}
		resp := make([]api.SlotResponse, 0, len(slots))
		for _, s := range slots {
			resp = append(resp, api.SlotResponse{
				ID:   s.ID,
				Date: s.Date.Format(service.DateLayout),
				Time: s.Time,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// DeleteSlotHandler removes a slot.
// @Summary     Delete a slot
// @Tags        admin
// @Produce     json
// @Param       id path int true "slot id"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.HTTPError
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     404 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/slots/{id} [delete]
func DeleteSlotHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.HTTPError{Message: "invalid slot id"})
		}

		date, err := store.DeleteSlot(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.HTTPError{Message: "slot not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}

		rdb.Del(c.Request().Context(), cache.AvailabilityKey(date.Format(service.DateLayout)))

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "slot deleted"})
	}
}
