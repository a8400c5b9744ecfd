package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental/internal/model"
)

func TestCustomerCreateDuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCustomerRepo(db)

	mock.ExpectExec("INSERT INTO customers").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'customers.username'"))

	cust := model.Customer{Username: "alice", FirstName: "Alice", LastName: "A", Email: "a@a.io", DriverLicenseNo: "DL1"}
	_, err = repo.Create(context.Background(), &cust, "secret", 4)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreatePopulatesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCustomerRepo(db)

	mock.ExpectExec("INSERT INTO customers").
		WillReturnResult(sqlmock.NewResult(11, 1))

	cust := model.Customer{Username: " alice ", FirstName: "Alice", LastName: "A", Email: "a@a.io", DriverLicenseNo: "DL1"}
	id, err := repo.Create(context.Background(), &cust, "secret", 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	assert.Equal(t, "alice", cust.Username, "username should be trimmed before insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsernameExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCustomerRepo(db)

	mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	taken, err := repo.UsernameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectQuery("SELECT 1 FROM customers").WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	taken, err = repo.UsernameExists(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, taken)

	assert.NoError(t, mock.ExpectationsWereMet())
}
