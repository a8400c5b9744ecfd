// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published after a reservation commits. It
// carries enough detail for downstream consumers to log or notify without
// querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID  uint64  `json:"reservation_id"`
	CustomerID     uint64  `json:"customer_id"`
	CarID          uint64  `json:"car_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	PickupBranchID uint64  `json:"pickup_branch_id"`
	ReturnBranchID uint64  `json:"return_branch_id"`
	PackageID      uint64  `json:"package_id"`
	TotalDays      int     `json:"total_days"`
	TotalCost      float64 `json:"total_cost"`
	CreatedAt      string  `json:"created_at"`
}

// ReservationCancelledEvent is published after a cancellation commits.
// ByAdmin distinguishes an administrator override from the owner's own
// cancellation.
type ReservationCancelledEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	CarID         uint64 `json:"car_id"`
	ByAdmin       bool   `json:"by_admin"`
	CancelledAt   string `json:"cancelled_at"`
}
