package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental/internal/model"
	"github.com/iliyamo/car-rental/internal/repository"
)

type createPackageReq struct {
	PackageName string  `json:"packageName"`
	Description string  `json:"description"`
	DailyCost   float64 `json:"dailyCost"`
}

// ListPackages handles GET /api/admin/packages.
func (h *AdminHandler) ListPackages(c echo.Context) error {
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

// CreatePackage handles POST /api/admin/packages.
func (h *AdminHandler) CreatePackage(c echo.Context) error {
	var req createPackageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PackageName == "" || req.DailyCost < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pkg := model.InsurancePackage{Name: req.PackageName, Description: req.Description, DailyCost: req.DailyCost}
	if err := h.Packages.Create(ctx, &pkg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create package failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Package added", "id": pkg.ID})
}

// DeletePackage handles DELETE /api/admin/packages/:id. A package still
// referenced by a reservation cannot be deleted.
func (h *AdminHandler) DeletePackage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Packages.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "Package deleted"})
	case errors.Is(err, repository.ErrInUse):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "package is referenced by reservations"})
	case errors.Is(err, repository.ErrPackageNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}
