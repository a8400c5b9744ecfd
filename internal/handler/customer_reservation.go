package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental/internal/model"
	"github.com/iliyamo/car-rental/internal/queue"
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/iliyamo/car-rental/internal/service"
)

type reserveReq struct {
	CarID          uint64 `json:"carId"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	PickupBranchID uint64 `json:"pickupBranchId"`
	ReturnBranchID uint64 `json:"returnBranchId"`
	PackageID      uint64 `json:"packageId"`
}

// Reserve handles POST /api/customer/reserve. The checks run in a fixed
// order, each one a terminal failure:
//
//  1. end date must be after start date
//  2. no existing reservation for the car may overlap the requested
//     interval; intervals that touch on a boundary day conflict too
//  3. the car must be available and stationed at the pickup branch
//  4. the package must exist
//
// Cost is (car daily rate + package daily cost) x total days. The
// overlap check, the insert and the car status change run inside one
// transaction holding a row lock on the car, and admissions for the
// same car additionally serialize on an in-process per-car mutex, so
// two concurrent requests for overlapping dates cannot both pass the
// check. On any failure the transaction rolls back whole; there is no
// partial state.
func (h *CustomerHandler) Reserve(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CarID == 0 || req.PickupBranchID == 0 || req.ReturnBranchID == 0 || req.PackageID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}
	totalDays := int(end.Sub(start).Hours() / 24)
	if totalDays <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end date must be after start date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	h.CarLocks.Lock(req.CarID)
	defer h.CarLocks.Unlock(req.CarID)

	tx, err := h.Reservations.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Row lock first so the overlap check and the status change see a
	// stable car row; validation order below still reports overlap
	// before status problems.
	status, dailyRate, carBranchID, err := h.Cars.GetForUpdateTx(ctx, tx, req.CarID)
	if errors.Is(err, repository.ErrCarNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}

	overlap, err := h.Reservations.HasOverlapTx(ctx, tx, req.CarID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}
	if overlap {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car is not available for the selected dates"})
	}
	if status != model.CarStatusAvailable {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car is not available"})
	}
	if carBranchID != req.PickupBranchID {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "car is not at the selected pickup branch"})
	}

	dailyCost, err := h.Packages.GetDailyCostTx(ctx, tx, req.PackageID)
	if errors.Is(err, repository.ErrPackageNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}

	totalCost := (dailyRate + dailyCost) * float64(totalDays)
	if math.IsNaN(totalCost) || math.IsInf(totalCost, 0) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cost computation failed"})
	}

	res := model.Reservation{
		CarID:          req.CarID,
		CustomerID:     customerID,
		StartDate:      start,
		EndDate:        end,
		PickupBranchID: req.PickupBranchID,
		ReturnBranchID: req.ReturnBranchID,
		PackageID:      req.PackageID,
		TotalDays:      totalDays,
		TotalCost:      totalCost,
	}
	if err := h.Reservations.CreateTx(ctx, tx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}
	if err := h.Cars.UpdateStatusTx(ctx, tx, req.CarID, model.CarStatusReserved); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
	}
	committed = true

	event := queue.ReservationCreatedEvent{
		ReservationID:  res.ID,
		CustomerID:     customerID,
		CarID:          req.CarID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PickupBranchID: req.PickupBranchID,
		ReturnBranchID: req.ReturnBranchID,
		PackageID:      req.PackageID,
		TotalDays:      totalDays,
		TotalCost:      totalCost,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := service.PublishReservationCreated(context.Background(), event); err != nil {
		h.Log.Warn().Err(err).Uint64("reservation_id", res.ID).Msg("publish reservation.created failed")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Reservation created",
		"reservationId": res.ID,
		"totalDays":     totalDays,
		"totalCost":     totalCost,
	})
}

// ListReservations handles GET /api/customer/reservations, newest first.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reservations, err := h.Reservations.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, toReservationResps(reservations))
}

// GetReservation handles GET /api/customer/reservations/:id. Customers
// only see their own reservations.
func (h *CustomerHandler) GetReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.Reservations.GetByIDForCustomer(c.Request().Context(), id, customerID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, toReservationResp(res))
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your reservation"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservation"})
	}
}

// DeleteReservation handles DELETE /api/customer/reservations/:id. Only
// the owner may cancel; the car goes back to available in the same
// transaction. Cancelling twice yields 404 on the second call.
func (h *CustomerHandler) DeleteReservation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	carID, err := cancelReservation(ctx, h.Reservations, h.Cars, id, customerID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your reservation"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	event := queue.ReservationCancelledEvent{
		ReservationID: id,
		CarID:         carID,
		ByAdmin:       false,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := service.PublishReservationCancelled(context.Background(), event); err != nil {
		h.Log.Warn().Err(err).Uint64("reservation_id", id).Msg("publish reservation.cancelled failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation cancelled"})
}
