package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavolo/night-booking/internal/model"
)

var bookingCols = []string{"id", "night_id", "customer_name", "customer_phone", "seat_ids", "table_ids", "status", "notes", "created_at"}

func TestBookingRepo_CreateTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	createdAt := time.Date(2025, 3, 15, 19, 30, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(uint64(5), "Mario Rossi", "333 1234567", []byte(`["41","42"]`), []byte(`["T6","T6"]`), nil).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(`FROM bookings WHERE id`).WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(9, 5, "Mario Rossi", "333 1234567", []byte(`["41","42"]`), []byte(`["T6","T6"]`), "confirmed", nil, createdAt))

	tx, err := db.Begin()
	require.NoError(t, err)

	booking := &model.Booking{
		NightID:       5,
		CustomerName:  "Mario Rossi",
		CustomerPhone: "333 1234567",
		SeatIDs:       []string{"41", "42"},
		TableIDs:      []string{"T6", "T6"},
	}
	err = repo.CreateTx(context.Background(), tx, booking)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), booking.ID)
	assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.Equal(t, []string{"41", "42"}, booking.SeatIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`FROM bookings WHERE id`).WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_ListByNight(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	later := time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	notes := "tavolo vicino al palco"
	rows := sqlmock.NewRows(bookingCols).
		AddRow(12, 5, "Anna Bianchi", "333 7654321", []byte(`["7"]`), []byte(`["T1"]`), "confirmed", notes, later).
		AddRow(9, 5, "Mario Rossi", "333 1234567", []byte(`["41","42"]`), []byte(`["T6","T6"]`), "confirmed", nil, earlier)
	mock.ExpectQuery(`FROM bookings\s+WHERE night_id = \?\s+ORDER BY created_at DESC, id DESC`).
		WithArgs(uint64(5)).WillReturnRows(rows)

	bookings, err := repo.ListByNight(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	// Newest first.
	assert.Equal(t, uint64(12), bookings[0].ID)
	require.NotNil(t, bookings[0].Notes)
	assert.Equal(t, notes, *bookings[0].Notes)
	assert.Equal(t, uint64(9), bookings[1].ID)
	assert.Nil(t, bookings[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_DeleteTx_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM bookings WHERE id`).WithArgs(uint64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = repo.DeleteTx(context.Background(), tx, 77)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
