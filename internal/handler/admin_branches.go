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

type createBranchReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListBranches handles GET /api/admin/branches.
func (h *AdminHandler) ListBranches(c echo.Context) error {
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

// CreateBranch handles POST /api/admin/branches.
func (h *AdminHandler) CreateBranch(c echo.Context) error {
	var req createBranchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	branch := model.Branch{Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := h.Branches.Create(ctx, &branch); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create branch failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Branch added", "id": branch.ID})
}

// DeleteBranch handles DELETE /api/admin/branches/:id. A branch with cars
// or reservations still pointing at it cannot be deleted.
func (h *AdminHandler) DeleteBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Branches.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "Branch deleted"})
	case errors.Is(err, repository.ErrInUse):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "branch is in use"})
	case errors.Is(err, repository.ErrBranchNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "branch not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}
