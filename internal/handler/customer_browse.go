package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BrowseCars handles GET /api/customer/cars. Each car carries its booked
// periods so the client can show which dates are taken.
func (h *CustomerHandler) BrowseCars(c echo.Context) error {
	cars, err := h.Cars.ListWithBookings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cars"})
	}
	return c.JSON(http.StatusOK, cars)
}

// BrowseBranches handles GET /api/customer/branches.
func (h *CustomerHandler) BrowseBranches(c echo.Context) error {
	branches, err := h.Branches.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load branches"})
	}
	out := make([]branchResp, 0, len(branches))
	for _, b := range branches {
		out = append(out, toBranchResp(b))
	}
	return c.JSON(http.StatusOK, out)
}

// BrowsePackages handles GET /api/customer/packages.
func (h *CustomerHandler) BrowsePackages(c echo.Context) error {
	packages, err := h.Packages.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load packages"})
	}
	out := make([]packageResp, 0, len(packages))
	for _, p := range packages {
		out = append(out, toPackageResp(p))
	}
	return c.JSON(http.StatusOK, out)
}
