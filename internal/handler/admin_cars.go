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

type createCarReq struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         uint16  `json:"year"`
	Transmission string  `json:"transmission"`
	Fuel         string  `json:"fuel"`
	Passengers   uint8   `json:"passengers"`
	DailyRate    float64 `json:"dailyRate"`
	BranchID     uint64  `json:"branchId"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// ListCars handles GET /api/admin/cars. Cars come joined with their
// reservation periods so the admin view can show upcoming bookings.
func (h *AdminHandler) ListCars(c echo.Context) error {
	cars, err := h.Cars.ListWithBookings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cars"})
	}
	return c.JSON(http.StatusOK, cars)
}

// CreateCar handles POST /api/admin/cars. New cars always start as
// available; the status field is not client-settable here.
func (h *AdminHandler) CreateCar(c echo.Context) error {
	var req createCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Brand == "" || req.Model == "" || req.Year == 0 || req.DailyRate <= 0 || req.BranchID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	car := model.Car{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Transmission: req.Transmission,
		Fuel:         req.Fuel,
		Passengers:   req.Passengers,
		DailyRate:    req.DailyRate,
		BranchID:     req.BranchID,
	}
	if err := h.Cars.Create(ctx, &car); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create car failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Car added", "id": car.ID})
}

// DeleteCar handles DELETE /api/admin/cars/:id. Cars referenced by a
// reservation cannot be deleted.
func (h *AdminHandler) DeleteCar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.Cars.Delete(c.Request().Context(), id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"message": "Car deleted"})
	case errors.Is(err, repository.ErrInUse):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car has reservations"})
	case errors.Is(err, repository.ErrCarNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
}

// UpdateCarStatus handles PUT /api/admin/cars/:id/status. Only the three
// admin-settable values are accepted and the transition runs through the
// state machine: a reserved car, or a car with an active reservation,
// cannot be retagged by hand.
func (h *AdminHandler) UpdateCarStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.AdminSettableStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid status, must be 'available', 'maintenance' or 'not_available'",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	car, err := h.Cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !model.CanTransition(car.Status, req.Status, true) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status change not allowed"})
	}

	active, err := h.Cars.CountActiveReservations(ctx, id, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if active > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car has active reservations"})
	}

	if err := h.Cars.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Car status updated"})
}
