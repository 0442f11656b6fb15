package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(0, 2)
	defer rl.Stop()
	mw := RateLimit(rl)

	do := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		c, _ := newCtx(req)
		return mw(okNext)(c)
	}

	// burst of 2, no refill
	require.NoError(t, do("10.0.0.1"))
	require.NoError(t, do("10.0.0.1"))
	err := do("10.0.0.1")
	he := &echo.HTTPError{}
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusTooManyRequests, he.Code)

	// buckets are per IP
	require.NoError(t, do("10.0.0.2"))
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	rl.Stop()

	// stopping only ends the sweeper; limiting keeps working
	require.True(t, rl.get("10.0.0.9").Allow())
	require.False(t, rl.get("10.0.0.9").Allow())
}
