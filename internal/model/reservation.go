package model

import "time"

// Reservation records a customer's booking of a car for a date range.
// TotalDays and TotalCost are derived at admission time and stored so
// the quoted price never drifts if rates change later.
//
// Fields:
//  ID             – primary key identifier.
//  CarID          – car being rented.
//  CustomerID     – customer who booked.
//  StartDate      – first rental day (date only, UTC).
//  EndDate        – last rental day (date only, UTC).
//  PickupBranchID – branch where the car is collected.
//  ReturnBranchID – branch where the car is returned.
//  PackageID      – insurance package chosen for the rental.
//  TotalDays      – ceil(end-start) in days, minimum 1.
//  TotalCost      – (car daily rate + package daily cost) * TotalDays.
//  CreatedAt      – timestamp of admission.
type Reservation struct {
	ID             uint64    // reservations.id
	CarID          uint64    // reservations.car_id
	CustomerID     uint64    // reservations.customer_id
	StartDate      time.Time // reservations.start_date
	EndDate        time.Time // reservations.end_date
	PickupBranchID uint64    // reservations.pickup_branch_id
	ReturnBranchID uint64    // reservations.return_branch_id
	PackageID      uint64    // reservations.package_id
	TotalDays      int       // reservations.total_days
	TotalCost      float64   // reservations.total_cost
	CreatedAt      time.Time // reservations.created_at
}
