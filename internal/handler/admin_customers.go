package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/admin/customers. Password hashes stay
// out of the response; see customerResp.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load customers"})
	}
	out := make([]customerResp, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResp(cust))
	}
	return c.JSON(http.StatusOK, out)
}
