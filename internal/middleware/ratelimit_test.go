package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/car-rental/internal/config"
)

func newRateCtx(method, path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}

// The limiter runs before authentication, so the key must be derived from
// the address and route only.
func TestRateKeyIgnoresIdentity(t *testing.T) {
	anon := newRateCtx(http.MethodGet, "/api/customer/cars")
	authed := newRateCtx(http.MethodGet, "/api/customer/cars")
	authed.Set("user_id", uint64(9))

	assert.Equal(t, "rl:ip:10.0.0.1:route:GET /api/customer/cars", rateKey("rl", anon))
	assert.Equal(t, rateKey("rl", anon), rateKey("rl", authed))
}

func TestRateKeySeparatesRoutes(t *testing.T) {
	a := newRateCtx(http.MethodGet, "/api/customer/cars")
	b := newRateCtx(http.MethodPost, "/api/customer/reserve")
	assert.NotEqual(t, rateKey("rl", a), rateKey("rl", b))
}

func TestRateLimitPassThroughWithoutRedis(t *testing.T) {
	cfg := config.LoadRateLimitConfig()
	h := RateLimit(cfg, nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	c := newRateCtx(http.MethodGet, "/api/customer/cars")
	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}
