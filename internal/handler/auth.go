package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental/internal/config"
	"github.com/iliyamo/car-rental/internal/model"
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/iliyamo/car-rental/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. Registration
// and login span both identity spaces: a username must be unique across
// customers and admins, and login discovers the role by which space
// matches instead of trusting the caller.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
	Admins    *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, customers *repository.CustomerRepo, admins *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: customers, Admins: admins}
}

// ----- DTOs -----

type registerCustomerReq struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DriverLicenseNo  string `json:"driverLicenseNo"`
	CreditCardNumber string `json:"creditCardNumber"`
	ExpDate          string `json:"expDate"`
	CVV              string `json:"cvv"`
}

type registerAdminReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// usernameTaken checks both identity spaces. The same check backs the
// advisory check-username endpoint and the authoritative re-check at
// registration time.
func (h *AuthHandler) usernameTaken(ctx context.Context, username string) (bool, error) {
	taken, err := h.Customers.UsernameExists(ctx, username)
	if err != nil || taken {
		return taken, err
	}
	return h.Admins.UsernameExists(ctx, username)
}

// RegisterCustomer handles POST /api/auth/register/customer.
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" ||
		req.Email == "" || req.DriverLicenseNo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	taken, err := h.usernameTaken(ctx, req.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if taken {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already taken"})
	}

	cust := model.Customer{
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		DriverLicenseNo: req.DriverLicenseNo,
		CardNumber:      req.CreditCardNumber,
		CardExpiry:      req.ExpDate,
		CardCVV:         req.CVV,
	}
	if _, err := h.Customers.Create(ctx, &cust, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create customer failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Customer registered"})
}

// RegisterAdmin handles POST /api/auth/register/admin.
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	taken, err := h.usernameTaken(ctx, req.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if taken {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already taken"})
	}

	if _, err := h.Admins.Create(ctx, req.Username, req.Password, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Admin registered"})
}

// CheckUsername handles GET /api/auth/check-username?username=x. Advisory
// only: registration re-checks server-side before inserting.
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username parameter required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	taken, err := h.usernameTaken(ctx, username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"available": !taken})
}

// Login handles POST /api/auth/login. The customer space is searched
// first, then admins; which one matches determines the role baked into
// the token. Unknown username and wrong password produce the same
// response so the endpoint does not leak which usernames exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByUsername(ctx, req.Username)
	if err == nil {
		if utils.VerifyPassword(cust.PasswordHash, req.Password) {
			return h.issueToken(c, cust.ID, cust.Username, "customer")
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	adm, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(adm.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}
	return h.issueToken(c, adm.ID, adm.Username, "admin")
}

func (h *AuthHandler) issueToken(c echo.Context, id uint64, username, role string) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, username, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": access.Token,
		"role":  role,
		"id":    id,
	})
}
