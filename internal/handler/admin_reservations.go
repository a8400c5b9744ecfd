package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental/internal/queue"
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/iliyamo/car-rental/internal/service"
)

// ListReservations handles GET /api/admin/reservations. Returns every
// reservation grouped by customer.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	reservations, err := h.Reservations.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, toReservationResps(reservations))
}

// DeleteReservation handles DELETE /api/admin/reservations/:id. Admins
// may cancel any customer's reservation; the car is freed in the same
// transaction.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	carID, err := cancelReservation(ctx, h.Reservations, h.Cars, id, 0)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	event := queue.ReservationCancelledEvent{
		ReservationID: id,
		CarID:         carID,
		ByAdmin:       true,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := service.PublishReservationCancelled(context.Background(), event); err != nil {
		h.Log.Warn().Err(err).Uint64("reservation_id", id).Msg("publish reservation.cancelled failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Reservation cancelled"})
}
