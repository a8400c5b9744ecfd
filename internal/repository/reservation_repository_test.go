package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestHasOverlapTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepo(db)
	overlapQ := regexp.QuoteMeta(
		"SELECT COUNT(*) FROM reservations WHERE car_id = ? AND NOT (end_date < ? OR start_date > ?)")

	t.Run("conflict found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(overlapQ).
			WithArgs(uint64(3), "2025-06-10", "2025-06-12").
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		got, err := repo.HasOverlapTx(context.Background(), tx, 3, day("2025-06-10"), day("2025-06-12"))
		require.NoError(t, err)
		assert.True(t, got)
		require.NoError(t, tx.Rollback())
	})

	t.Run("no conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(overlapQ).
			WithArgs(uint64(3), "2025-07-01", "2025-07-04").
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		got, err := repo.HasOverlapTx(context.Background(), tx, 3, day("2025-07-01"), day("2025-07-04"))
		require.NoError(t, err)
		assert.False(t, got)
		require.NoError(t, tx.Rollback())
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTxPopulatesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(uint64(3), uint64(9), "2025-06-10", "2025-06-13",
			uint64(1), uint64(2), uint64(4), 3, 150.0).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	res := model.Reservation{
		CarID:          3,
		CustomerID:     9,
		StartDate:      day("2025-06-10"),
		EndDate:        day("2025-06-13"),
		PickupBranchID: 1,
		ReturnBranchID: 2,
		PackageID:      4,
		TotalDays:      3,
		TotalCost:      150.0,
	}
	require.NoError(t, repo.CreateTx(context.Background(), tx, &res))
	assert.Equal(t, uint64(42), res.ID)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCarIDByIDAndCustomerTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepo(db)
	q := regexp.QuoteMeta("SELECT car_id, customer_id FROM reservations WHERE id = ? FOR UPDATE")

	t.Run("owner may load", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(q).WithArgs(uint64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"car_id", "customer_id"}).AddRow(3, 9))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		carID, err := repo.GetCarIDByIDAndCustomerTx(context.Background(), tx, 5, 9)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), carID)
		require.NoError(t, tx.Rollback())
	})

	t.Run("stranger gets forbidden", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(q).WithArgs(uint64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"car_id", "customer_id"}).AddRow(3, 9))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		_, err = repo.GetCarIDByIDAndCustomerTx(context.Background(), tx, 5, 777)
		assert.ErrorIs(t, err, ErrForbidden)
		require.NoError(t, tx.Rollback())
	})

	t.Run("admin override skips ownership", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(q).WithArgs(uint64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"car_id", "customer_id"}).AddRow(3, 9))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		carID, err := repo.GetCarIDByIDAndCustomerTx(context.Background(), tx, 5, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), carID)
		require.NoError(t, tx.Rollback())
	})

	t.Run("missing reservation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(q).WithArgs(uint64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"car_id", "customer_id"}))
		mock.ExpectRollback()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)
		_, err = repo.GetCarIDByIDAndCustomerTx(context.Background(), tx, 404, 9)
		assert.ErrorIs(t, err, ErrReservationNotFound)
		require.NoError(t, tx.Rollback())
	})
}

func TestDeleteTxMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewReservationRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = ?")).
		WithArgs(uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.DeleteTx(context.Background(), tx, 404), ErrReservationNotFound)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
