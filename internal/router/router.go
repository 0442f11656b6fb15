// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/handler"
	"citas-api/internal/handler/admin"
	"citas-api/internal/handler/appointments"
	"citas-api/internal/handler/auth"
	"citas-api/internal/handler/users"
	"citas-api/internal/middleware"
	"citas-api/internal/notify"
	"citas-api/internal/service"
	"citas-api/internal/worker"
)

// Setup registers every route and its middleware chain.
//
// Two session entry points exist on purpose: API-style routes resolve the
// bearer Authorization header, browser-facing booking and admin routes
// resolve the access_token cookie. Each route checks exactly one source.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.Tokens, wp worker.Pool, mailer notify.Mailer) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(db, tokens)
	requireSession := middleware.RequireSession(db, tokens)
	loginLimiter := middleware.RateLimit(middleware.NewRateLimiter(5, 10))

	// Health (authenticated, header-based)
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// Accounts
	api.POST("/auth/register", auth.RegisterHandler(db), loginLimiter)
	api.POST("/auth/login", auth.LoginHandler(db, tokens), loginLimiter)
	api.POST("/auth/logout", auth.LogoutHandler())

	// Public reason catalog
	api.GET("/reasons", handler.ListReasonsHandler(db))

	// Profile and admin user listing (header-based)
	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("/me", users.GetMyUserHandler())
	apiUsers.GET("", users.ListUsersHandler(db), middleware.RequireAdmin)

	// Booking (cookie-based)
	apiAppts := api.Group("/appointments", requireSession)
	apiAppts.GET("/available", appointments.AvailableHandler(db, rdb))
	apiAppts.POST("", appointments.CreateHandler(db, rdb, wp, mailer))
	apiAppts.GET("", appointments.ListHandler(db))
	apiAppts.DELETE("/:id", appointments.CancelHandler(db, rdb))

	// Administration (cookie-based + admin gate)
	apiAdmin := api.Group("/admin", requireSession, middleware.RequireAdmin)
	apiAdmin.POST("/slots", admin.CreateSlotHandler(db, rdb))
	apiAdmin.GET("/slots", admin.ListSlotsHandler(db))
	apiAdmin.DELETE("/slots/:id", admin.DeleteSlotHandler(db, rdb))
	apiAdmin.POST("/reasons", admin.CreateReasonHandler(db))
	apiAdmin.DELETE("/reasons/:id", admin.DeleteReasonHandler(db))
	apiAdmin.GET("/appointments", admin.ListAppointmentsHandler(db))
}
