package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/car-rental/internal/model"
)

// ReservationRepo encapsulates all queries against the `reservations`
// table. The admission and cancellation flows run through the *Tx methods
// so the reservation write and the car status change commit or roll back
// as one unit.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

const dateLayout = "2006-01-02"

// HasOverlapTx reports whether any reservation for the car overlaps
// [start, end] inclusively: intervals that merely touch on a boundary day
// count as overlapping. Runs inside the admission transaction after the
// car row lock has been taken.
func (r *ReservationRepo) HasOverlapTx(ctx context.Context, tx *sql.Tx, carID uint64, start, end time.Time) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE car_id = ? AND NOT (end_date < ? OR start_date > ?)",
		carID, start.Format(dateLayout), end.Format(dateLayout)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateTx inserts the reservation inside the admission transaction and
// populates its ID.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO reservations
		 (car_id, customer_id, start_date, end_date, pickup_branch_id, return_branch_id, package_id, total_days, total_cost)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		res.CarID, res.CustomerID,
		res.StartDate.Format(dateLayout), res.EndDate.Format(dateLayout),
		res.PickupBranchID, res.ReturnBranchID, res.PackageID, res.TotalDays, res.TotalCost)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// GetCarIDByIDAndCustomerTx loads the reservation's car id while checking
// ownership, all inside the cancellation transaction. A missing row yields
// ErrReservationNotFound; a row owned by someone else yields ErrForbidden.
// customerID 0 means administrator override: ownership is not checked.
func (r *ReservationRepo) GetCarIDByIDAndCustomerTx(ctx context.Context, tx *sql.Tx, id, customerID uint64) (uint64, error) {
	var carID, ownerID uint64
	err := tx.QueryRowContext(ctx,
		"SELECT car_id, customer_id FROM reservations WHERE id = ? FOR UPDATE",
		id).Scan(&carID, &ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrReservationNotFound
	}
	if err != nil {
		return 0, err
	}
	if customerID != 0 && ownerID != customerID {
		return 0, ErrForbidden
	}
	return carID, nil
}

// DeleteTx removes the reservation row inside the cancellation
// transaction; ErrReservationNotFound when zero rows were affected.
func (r *ReservationRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ListAll returns every reservation ordered by customer for the admin
// overview.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return r.list(ctx,
		`SELECT id, car_id, customer_id, start_date, end_date, pickup_branch_id,
				return_branch_id, package_id, total_days, total_cost, created_at
		 FROM reservations ORDER BY customer_id, id`)
}

// ListByCustomer returns the customer's own reservations, newest first.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Reservation, error) {
	return r.list(ctx,
		`SELECT id, car_id, customer_id, start_date, end_date, pickup_branch_id,
				return_branch_id, package_id, total_days, total_cost, created_at
		 FROM reservations WHERE customer_id = ? ORDER BY created_at DESC, id DESC`,
		customerID)
}

// GetByIDForCustomer returns one reservation enforcing ownership.
func (r *ReservationRepo) GetByIDForCustomer(ctx context.Context, id, customerID uint64) (model.Reservation, error) {
	var res model.Reservation
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, car_id, customer_id, start_date, end_date, pickup_branch_id,
				return_branch_id, package_id, total_days, total_cost, created_at
		 FROM reservations WHERE id = ? LIMIT 1`, id).Scan(
		&res.ID, &res.CarID, &res.CustomerID, &res.StartDate, &res.EndDate,
		&res.PickupBranchID, &res.ReturnBranchID, &res.PackageID,
		&res.TotalDays, &res.TotalCost, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return res, ErrReservationNotFound
	}
	if err != nil {
		return res, err
	}
	if res.CustomerID != customerID {
		return model.Reservation{}, ErrForbidden
	}
	return res, nil
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.CarID, &res.CustomerID, &res.StartDate, &res.EndDate,
			&res.PickupBranchID, &res.ReturnBranchID, &res.PackageID,
			&res.TotalDays, &res.TotalCost, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
