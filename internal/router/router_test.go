package router

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"citas-api/internal/cache"
	"citas-api/internal/database"
	"citas-api/internal/notify"
	"citas-api/internal/service"
	"citas-api/internal/worker"
)

func TestSetupRegistersRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1)
	defer wp.Stop()

	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, service.NewTokens("s", time.Hour), wp, notify.NoopMailer{})

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/reasons",
		http.MethodGet + " /api/users/me",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/appointments/available",
		http.MethodPost + " /api/appointments",
		http.MethodGet + " /api/appointments",
		http.MethodDelete + " /api/appointments/:id",
		http.MethodPost + " /api/admin/slots",
		http.MethodGet + " /api/admin/slots",
		http.MethodDelete + " /api/admin/slots/:id",
		http.MethodPost + " /api/admin/reasons",
		http.MethodDelete + " /api/admin/reasons/:id",
		http.MethodGet + " /api/admin/appointments",
	}
	for _, route := range want {
		require.True(t, registered[route], "missing route %s", route)
	}
}
