// File: internal/handler/reasons.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"citas-api/internal/api"
	"citas-api/internal/database"
	"citas-api/internal/store"
)

// ListReasonsHandler lists the bookable reasons. Deliberately public: the
// catalog holds nothing sensitive and the booking form needs it pre-login.
// @Summary     List appointment reasons
// @Tags        reasons
// @Produce     json
// @Success     200 {array} api.ReasonResponse
// @Failure     500 {object} api.HTTPError
// @Router      /reasons [get]
func ListReasonsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		reasons, err := store.ListReasons(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: err.Error()})
		}
		resp := make([]api.ReasonResponse, 0, len(reasons))
		for _, r := range reasons {
			resp = append(resp, api.ReasonResponse{ID: r.ID, Name: r.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
