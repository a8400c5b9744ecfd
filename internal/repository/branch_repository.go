package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/car-rental/internal/model"
)

// BranchRepo encapsulates all queries against the `branches` table.
type BranchRepo struct{ DB *sql.DB }

func NewBranchRepo(db *sql.DB) *BranchRepo { return &BranchRepo{DB: db} }

// List returns all branches ordered by ID.
func (r *BranchRepo) List(ctx context.Context) ([]model.Branch, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, phone, address FROM branches ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]model.Branch, 0)
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Address); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// Create inserts a branch and populates its ID.
func (r *BranchRepo) Create(ctx context.Context, b *model.Branch) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO branches (name, phone, address) VALUES (?,?,?)",
		b.Name, b.Phone, b.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// Delete removes a branch. It refuses with ErrInUse while any car is
// stationed at the branch or any reservation references it as pickup or
// return location, and returns ErrBranchNotFound when no row matches.
func (r *BranchRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	err := r.DB.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM cars WHERE branch_id = ?) +
				(SELECT COUNT(*) FROM reservations WHERE pickup_branch_id = ? OR return_branch_id = ?)`,
		id, id, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM branches WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBranchNotFound
	}
	return nil
}
