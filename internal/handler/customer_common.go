package handler

import (
	"github.com/rs/zerolog"

	"github.com/iliyamo/car-rental/internal/lock"
	"github.com/iliyamo/car-rental/internal/repository"
)

// CustomerHandler bundles the repositories behind the /api/customer
// surface plus the per-car lock the reservation flow serializes on.
type CustomerHandler struct {
	Cars         *repository.CarRepo
	Branches     *repository.BranchRepo
	Packages     *repository.InsuranceRepo
	Reservations *repository.ReservationRepo
	CarLocks     *lock.Keyed
	Log          zerolog.Logger
}

// NewCustomerHandler constructs a CustomerHandler and panics if any
// dependency is nil; wiring bugs should fail at startup, not on the
// first request.
func NewCustomerHandler(cars *repository.CarRepo, branches *repository.BranchRepo, packages *repository.InsuranceRepo, reservations *repository.ReservationRepo, carLocks *lock.Keyed, log zerolog.Logger) *CustomerHandler {
	if cars == nil || branches == nil || packages == nil || reservations == nil || carLocks == nil {
		panic("nil dependency passed to NewCustomerHandler")
	}
	return &CustomerHandler{
		Cars:         cars,
		Branches:     branches,
		Packages:     packages,
		Reservations: reservations,
		CarLocks:     carLocks,
		Log:          log,
	}
}
