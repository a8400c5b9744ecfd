package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental/internal/utils"
)

const testSecret = "test-secret"

func runAuthed(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen echo.Context
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestJWTAuthValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, 9, "alice", "customer", 15)
	require.NoError(t, err)

	rec, seen := runAuthed(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Get("username"))
	assert.Equal(t, "customer", seen.Get("role"))
	// Numeric JWT claims decode as float64.
	assert.Equal(t, float64(9), seen.Get("user_id"))
}

func TestJWTAuthRejects(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		rec, _ := runAuthed(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not bearer", func(t *testing.T) {
		rec, _ := runAuthed(t, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, _ := runAuthed(t, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		access, err := utils.NewAccessToken("other-secret", 9, "alice", "customer", 15)
		require.NoError(t, err)
		rec, _ := runAuthed(t, "Bearer "+access.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	run := func(role any, allowed ...string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		h := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec
	}

	assert.Equal(t, http.StatusOK, run("admin", "admin").Code)
	assert.Equal(t, http.StatusOK, run("customer", "admin", "customer").Code)
	assert.Equal(t, http.StatusForbidden, run("customer", "admin").Code)
	assert.Equal(t, http.StatusForbidden, run(nil, "admin").Code)
}
