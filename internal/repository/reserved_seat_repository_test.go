package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavolo/night-booking/internal/model"
)

func TestReservedSeatRepo_FilterReservedTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	mock.ExpectBegin()
	// The DB returns taken seats in arbitrary order; the repo must report
	// them in request order.
	rows := sqlmock.NewRows([]string{"seat_id"}).AddRow("42").AddRow("7")
	mock.ExpectQuery(`SELECT seat_id FROM reserved_seats WHERE night_id = \? AND seat_id IN`).
		WithArgs(uint64(5), "7", "8", "42").
		WillReturnRows(rows)

	tx, err := db.Begin()
	require.NoError(t, err)

	conflicting, err := repo.FilterReservedTx(context.Background(), tx, 5, []string{"7", "8", "42"})
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "42"}, conflicting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservedSeatRepo_FilterReserved_NoConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	mock.ExpectQuery(`SELECT seat_id FROM reserved_seats WHERE night_id`).
		WithArgs(uint64(5), "7").
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}))

	conflicting, err := repo.FilterReserved(context.Background(), 5, []string{"7"})
	require.NoError(t, err)
	assert.Empty(t, conflicting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservedSeatRepo_FilterReserved_EmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	conflicting, err := repo.FilterReserved(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservedSeatRepo_CreateBulkTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO reserved_seats`).
		WithArgs(uint64(5), uint64(9), "T6", "41", uint64(5), uint64(9), "T6", "42").
		WillReturnResult(sqlmock.NewResult(1, 2))

	tx, err := db.Begin()
	require.NoError(t, err)

	seats := []model.ReservedSeat{
		{NightID: 5, BookingID: 9, TableID: "T6", SeatID: "41"},
		{NightID: 5, BookingID: 9, TableID: "T6", SeatID: "42"},
	}
	require.NoError(t, repo.CreateBulkTx(context.Background(), tx, seats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSeatTaken(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '5-42' for key 'uq_night_seat'"}
	assert.True(t, IsSeatTaken(dup))
	assert.True(t, IsSeatTaken(fmt.Errorf("insert reserved seats: %w", dup)))
	assert.False(t, IsSeatTaken(&mysql.MySQLError{Number: 1452, Message: "foreign key"}))
	assert.False(t, IsSeatTaken(errors.New("connection reset")))
	assert.False(t, IsSeatTaken(nil))
}

func TestReservedSeatRepo_ListByNight_Hydration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	createdAt := time.Date(2025, 3, 15, 19, 30, 0, 0, time.UTC)
	cols := []string{"id", "night_id", "booking_id", "table_id", "seat_id", "created_at", "customer_name"}
	rows := sqlmock.NewRows(cols).
		AddRow(1, 5, 9, "T6", "41", createdAt, "Mario Rossi").
		AddRow(2, 5, 31, "T1", "7", createdAt, nil) // orphaned row: booking missing
	mock.ExpectQuery(`LEFT JOIN bookings b ON b.id = rs.booking_id`).
		WithArgs(uint64(5)).WillReturnRows(rows)

	seats, err := repo.ListByNight(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	require.NotNil(t, seats[0].BookingCustomerName)
	assert.Equal(t, "Mario Rossi", *seats[0].BookingCustomerName)
	// A seat whose booking is gone hydrates to a null name, not an error.
	assert.Nil(t, seats[1].BookingCustomerName)
	assert.Equal(t, "7", seats[1].SeatID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservedSeatRepo_DeleteByBookingTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReservedSeatRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reserved_seats WHERE booking_id`).
		WithArgs(uint64(9)).WillReturnResult(sqlmock.NewResult(0, 2))

	tx, err := db.Begin()
	require.NoError(t, err)

	released, err := repo.DeleteByBookingTx(context.Background(), tx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), released)
	assert.NoError(t, mock.ExpectationsWereMet())
}
