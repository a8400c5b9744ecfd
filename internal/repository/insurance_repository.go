package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/car-rental/internal/model"
)

// InsuranceRepo encapsulates all queries against `insurance_packages`.
type InsuranceRepo struct{ DB *sql.DB }

func NewInsuranceRepo(db *sql.DB) *InsuranceRepo { return &InsuranceRepo{DB: db} }

// List returns all insurance packages ordered by ID.
func (r *InsuranceRepo) List(ctx context.Context) ([]model.InsurancePackage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, description, daily_cost FROM insurance_packages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]model.InsurancePackage, 0)
	for rows.Next() {
		var p model.InsurancePackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.DailyCost); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// Create inserts a package and populates its ID.
func (r *InsuranceRepo) Create(ctx context.Context, p *model.InsurancePackage) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO insurance_packages (name, description, daily_cost) VALUES (?,?,?)",
		p.Name, p.Description, p.DailyCost)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetDailyCostTx fetches the package's daily cost inside the admission
// transaction; ErrPackageNotFound when no row matches.
func (r *InsuranceRepo) GetDailyCostTx(ctx context.Context, tx *sql.Tx, id uint64) (float64, error) {
	var cost float64
	err := tx.QueryRowContext(ctx,
		"SELECT daily_cost FROM insurance_packages WHERE id = ? LIMIT 1", id).Scan(&cost)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPackageNotFound
	}
	return cost, err
}

// Delete removes a package unless reservations still reference it.
func (r *InsuranceRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE package_id = ?", id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM insurance_packages WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPackageNotFound
	}
	return nil
}
