package handler

import (
	"github.com/iliyamo/car-rental/internal/repository"
	"github.com/rs/zerolog"
)

// AdminHandler bundles the repositories behind the /api/admin surface.
type AdminHandler struct {
	Cars         *repository.CarRepo
	Branches     *repository.BranchRepo
	Packages     *repository.InsuranceRepo
	Customers    *repository.CustomerRepo
	Reservations *repository.ReservationRepo
	Log          zerolog.Logger
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency
// is nil; wiring bugs should fail at startup, not on the first request.
func NewAdminHandler(cars *repository.CarRepo, branches *repository.BranchRepo, packages *repository.InsuranceRepo, customers *repository.CustomerRepo, reservations *repository.ReservationRepo, log zerolog.Logger) *AdminHandler {
	if cars == nil || branches == nil || packages == nil || customers == nil || reservations == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		Cars:         cars,
		Branches:     branches,
		Packages:     packages,
		Customers:    customers,
		Reservations: reservations,
		Log:          log,
	}
}
