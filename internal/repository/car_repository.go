package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/car-rental/internal/model"
)

// BookedPeriod is a date interval during which a car is reserved. It is
// embedded in car listings so clients can grey out taken ranges without a
// second request.
type BookedPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CarWithBookings is a car joined with the periods of its reservations.
type CarWithBookings struct {
	ID            uint64         `json:"id"`
	Brand         string         `json:"brand"`
	Model         string         `json:"model"`
	Year          uint16         `json:"year"`
	Transmission  string         `json:"transmission"`
	Fuel          string         `json:"fuel"`
	Passengers    uint8          `json:"passengers"`
	DailyRate     float64        `json:"dailyRate"`
	Status        string         `json:"status"`
	BranchID      uint64         `json:"branchId"`
	BookedPeriods []BookedPeriod `json:"bookedPeriods"`
}

// CarRepo encapsulates all queries against the `cars` table.
type CarRepo struct{ DB *sql.DB }

func NewCarRepo(db *sql.DB) *CarRepo { return &CarRepo{DB: db} }

// ListWithBookings returns every car LEFT JOINed with its reservation
// periods, grouped per car. Cars without reservations get an empty slice,
// never null, so the JSON stays uniform.
func (r *CarRepo) ListWithBookings(ctx context.Context) ([]CarWithBookings, error) {
	const q = `SELECT c.id, c.brand, c.model, c.year, c.transmission, c.fuel,
					  c.passengers, c.daily_rate, c.status, c.branch_id,
					  r.start_date, r.end_date
			   FROM cars c
			   LEFT JOIN reservations r ON r.car_id = c.id
			   ORDER BY c.id, r.start_date`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]CarWithBookings, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var c CarWithBookings
		var start, end sql.NullTime
		if err := rows.Scan(
			&c.ID, &c.Brand, &c.Model, &c.Year, &c.Transmission, &c.Fuel,
			&c.Passengers, &c.DailyRate, &c.Status, &c.BranchID, &start, &end); err != nil {
			return nil, err
		}
		i, seen := index[c.ID]
		if !seen {
			c.BookedPeriods = []BookedPeriod{}
			index[c.ID] = len(cars)
			cars = append(cars, c)
			i = index[c.ID]
		}
		if start.Valid && end.Valid {
			cars[i].BookedPeriods = append(cars[i].BookedPeriods, BookedPeriod{
				StartDate: start.Time.Format("2006-01-02"),
				EndDate:   end.Time.Format("2006-01-02"),
			})
		}
	}
	return cars, rows.Err()
}

// Create inserts a car and populates its ID. New cars always start as
// available regardless of what the caller set on the struct.
func (r *CarRepo) Create(ctx context.Context, c *model.Car) error {
	c.Status = model.CarStatusAvailable
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO cars (brand, model, year, transmission, fuel, passengers, daily_rate, status, branch_id)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		c.Brand, c.Model, c.Year, c.Transmission, c.Fuel, c.Passengers, c.DailyRate, c.Status, c.BranchID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a single car; ErrCarNotFound when no row matches.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (model.Car, error) {
	var c model.Car
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, brand, model, year, transmission, fuel, passengers, daily_rate, status, branch_id
		 FROM cars WHERE id = ? LIMIT 1`, id).Scan(
		&c.ID, &c.Brand, &c.Model, &c.Year, &c.Transmission, &c.Fuel,
		&c.Passengers, &c.DailyRate, &c.Status, &c.BranchID)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrCarNotFound
	}
	return c, err
}

// GetForUpdateTx loads the fields the admission sequence needs and takes a
// row lock (SELECT ... FOR UPDATE) so two concurrent admissions for the
// same car serialize inside the database as well.
func (r *CarRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (status string, dailyRate float64, branchID uint64, err error) {
	err = tx.QueryRowContext(ctx,
		"SELECT status, daily_rate, branch_id FROM cars WHERE id = ? FOR UPDATE",
		id).Scan(&status, &dailyRate, &branchID)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrCarNotFound
	}
	return status, dailyRate, branchID, err
}

// FreeTx returns the car to available inside the caller's transaction,
// but only when it is currently reserved. A zero-row update is not an
// error: a car an admin retagged to maintenance after its reservation
// ended keeps that status when the stale reservation is cancelled.
func (r *CarRepo) FreeTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE cars SET status = ? WHERE id = ? AND status = ?",
		model.CarStatusAvailable, id, model.CarStatusReserved)
	return err
}

// UpdateStatusTx sets the car status inside the caller's transaction.
func (r *CarRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	res, err := tx.ExecContext(ctx, "UPDATE cars SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCarNotFound
	}
	return nil
}

// UpdateStatus sets the car status outside a transaction (admin path).
// Transition validation happens in the handler via model.CanTransition.
func (r *CarRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE cars SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCarNotFound
	}
	return nil
}

// CountActiveReservations counts reservations for the car that have not
// ended before the given day. The admin status endpoint refuses direct
// changes while this is non-zero.
func (r *CarRepo) CountActiveReservations(ctx context.Context, id uint64, today time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE car_id = ? AND end_date >= ?",
		id, today.Format("2006-01-02")).Scan(&n)
	return n, err
}

// Delete removes a car unless reservations still reference it (ErrInUse).
// ErrCarNotFound is returned when no row matches.
func (r *CarRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE car_id = ?", id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCarNotFound
	}
	return nil
}
