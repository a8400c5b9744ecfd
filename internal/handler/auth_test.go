package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental/internal/config"
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/iliyamo/car-rental/internal/utils"
)

func testConfig() config.Config {
	return config.Config{
		Env:          "dev",
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		BcryptCost:   4,
	}
}

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthHandler(testConfig(), repository.NewCustomerRepo(db), repository.NewAdminRepo(db)), mock
}

func authRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const customerByUsernameQ = "SELECT id, username, password_hash"

func customerRow(t *testing.T, id uint64, username, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "first_name", "last_name",
		"email", "phone", "driver_license_no", "card_number", "card_expiry", "card_cvv", "created_at"}).
		AddRow(id, username, hash, "Alice", "A", "a@a.io", "555", "DL1", "4111", "12/27", "123", time.Now())
}

func TestLoginDiscoversCustomerRole(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(customerByUsernameQ).WithArgs("alice").
		WillReturnRows(customerRow(t, 9, "alice", "secret"))

	c, rec := authRequest(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		ID    uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "customer", resp.Role)
	assert.Equal(t, uint64(9), resp.ID)
}

func TestLoginFallsBackToAdminSpace(t *testing.T) {
	h, mock := newAuthHandler(t)

	hash, err := utils.HashPassword("hunter2", 4)
	require.NoError(t, err)

	mock.ExpectQuery(customerByUsernameQ).WithArgs("boss").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM admins").WithArgs("boss").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(2, "boss", hash, time.Now()))

	c, rec := authRequest(http.MethodPost, "/api/auth/login", `{"username":"boss","password":"hunter2"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Role string `json:"role"`
		ID   uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, uint64(2), resp.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(customerByUsernameQ).WithArgs("alice").
		WillReturnRows(customerRow(t, 9, "alice", "secret"))

	c, rec := authRequest(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery(customerByUsernameQ).WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("FROM admins").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, rec := authRequest(http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"x"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestCheckUsername(t *testing.T) {
	t.Run("missing parameter", func(t *testing.T) {
		h, _ := newAuthHandler(t)
		c, rec := authRequest(http.MethodGet, "/api/auth/check-username", "")
		require.NoError(t, h.CheckUsername(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("taken in customer space", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

		c, rec := authRequest(http.MethodGet, "/api/auth/check-username?username=alice", "")
		require.NoError(t, h.CheckUsername(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available":false`)
	})

	t.Run("taken in admin space", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("boss").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectQuery("SELECT 1 FROM admins").WithArgs("boss").
			WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

		c, rec := authRequest(http.MethodGet, "/api/auth/check-username?username=boss", "")
		require.NoError(t, h.CheckUsername(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available":false`)
	})

	t.Run("free everywhere", func(t *testing.T) {
		h, mock := newAuthHandler(t)
		mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("newbie").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))
		mock.ExpectQuery("SELECT 1 FROM admins").WithArgs("newbie").
			WillReturnRows(sqlmock.NewRows([]string{"1"}))

		c, rec := authRequest(http.MethodGet, "/api/auth/check-username?username=newbie", "")
		require.NoError(t, h.CheckUsername(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available":true`)
	})
}

func TestRegisterCustomerTakenUsername(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	body := `{"username":"alice","password":"secret","firstName":"Alice","lastName":"A","email":"a@a.io","driverLicenseNo":"DL1"}`
	c, rec := authRequest(http.MethodPost, "/api/auth/register", body)
	require.NoError(t, h.RegisterCustomer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already taken")
}

func TestRegisterCustomerMissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	body := `{"username":"alice","password":"secret"}`
	c, rec := authRequest(http.MethodPost, "/api/auth/register", body)
	require.NoError(t, h.RegisterCustomer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
}
