package handler

import (
	"context"

	"github.com/iliyamo/car-rental/internal/repository"
)

// cancelReservation deletes a reservation and frees its car in one
// transaction. customerID 0 skips the ownership check (admin override).
// Returns the car's id so the caller can publish the event. The car goes
// back to available only from reserved; a status an admin set in the
// meantime (the reservation may already have ended) is left alone.
func cancelReservation(ctx context.Context, reservations *repository.ReservationRepo, cars *repository.CarRepo, id, customerID uint64) (uint64, error) {
	tx, err := reservations.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	carID, err := reservations.GetCarIDByIDAndCustomerTx(ctx, tx, id, customerID)
	if err != nil {
		return 0, err
	}
	if err := reservations.DeleteTx(ctx, tx, id); err != nil {
		return 0, err
	}
	if err := cars.FreeTx(ctx, tx, carID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return carID, nil
}
