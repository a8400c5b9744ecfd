package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/car-rental/internal/model"
	"github.com/iliyamo/car-rental/internal/utils"
)

// CustomerRepo encapsulates all queries against the `customers` table.
type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// Create hashes the password and inserts the customer, returning its ID.
// A duplicate username surfaces as ErrUsernameTaken; the handler also
// pre-checks both identity spaces, this catches the race on the unique key.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer, password string, cost int) (uint64, error) {
	c.Username = strings.TrimSpace(c.Username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO customers
		 (username, password_hash, first_name, last_name, email, phone, driver_license_no, card_number, card_expiry, card_cvv)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		c.Username, hash, c.FirstName, c.LastName, c.Email, c.Phone,
		c.DriverLicenseNo, c.CardNumber, c.CardExpiry, c.CardCVV)
	if err != nil {
		// MySQL duplicate-key errors carry code 1062.
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	c.ID = uint64(id)
	return c.ID, nil
}

// GetByUsername fetches a customer by username. sql.ErrNoRows passes
// through so login can fall back to the admin space.
func (r *CustomerRepo) GetByUsername(ctx context.Context, username string) (model.Customer, error) {
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash, first_name, last_name, email, phone,
				driver_license_no, card_number, card_expiry, card_cvv, created_at
		 FROM customers WHERE username = ? LIMIT 1`,
		strings.TrimSpace(username)).Scan(
		&c.ID, &c.Username, &c.PasswordHash, &c.FirstName, &c.LastName, &c.Email,
		&c.Phone, &c.DriverLicenseNo, &c.CardNumber, &c.CardExpiry, &c.CardCVV, &c.CreatedAt)
	return c, err
}

// UsernameExists reports whether any customer uses the given username.
func (r *CustomerRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM customers WHERE username = ? LIMIT 1",
		strings.TrimSpace(username)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all customers ordered by ID for the admin overview.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, username, password_hash, first_name, last_name, email, phone,
				driver_license_no, card_number, card_expiry, card_cvv, created_at
		 FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.Username, &c.PasswordHash, &c.FirstName, &c.LastName, &c.Email,
			&c.Phone, &c.DriverLicenseNo, &c.CardNumber, &c.CardExpiry, &c.CardCVV, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
