package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/tavolo/night-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings. A booking groups one
// or more seats reserved for a night by a single customer; the per-seat
// rows live in reserved_seats and are managed by ReservedSeatRepo. Seat
// and table id lists are persisted as JSON arrays on the booking row. All
// timestamp fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingColumns = `id, night_id, customer_name, customer_phone, seat_ids, table_ids, status, notes, created_at`

// scanBooking reads one booking row, decoding the JSON seat and table id
// arrays and the nullable notes column.
func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	var seatIDs, tableIDs []byte
	var notes sql.NullString
	if err := row.Scan(
		&b.ID, &b.NightID, &b.CustomerName, &b.CustomerPhone,
		&seatIDs, &tableIDs, &b.Status, &notes, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(seatIDs, &b.SeatIDs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tableIDs, &b.TableIDs); err != nil {
		return nil, err
	}
	if notes.Valid {
		v := notes.String
		b.Notes = &v
	}
	return &b, nil
}

// CreateTx inserts a new booking within the scope of an existing
// transaction. It populates the generated ID and DB-default fields
// (status, created_at) on the provided struct. The caller must commit or
// roll back the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	seatIDs, err := json.Marshal(b.SeatIDs)
	if err != nil {
		return err
	}
	tableIDs, err := json.Marshal(b.TableIDs)
	if err != nil {
		return err
	}
	const q = `INSERT INTO bookings (night_id, customer_name, customer_phone, seat_ids, table_ids, notes)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.NightID, b.CustomerName, b.CustomerPhone, seatIDs, tableIDs, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Query back the full row to populate status and created_at defaults.
	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	created, err := scanBooking(tx.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = *created
	return nil
}

// GetByID returns the booking with the given primary key. It returns
// ErrBookingNotFound when no such booking exists.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// GetByIDTx is like GetByID but runs inside the given transaction and
// locks the booking row, so a concurrent delete of the same booking
// blocks until the caller commits or rolls back.
func (r *BookingRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

// ListByNight returns all bookings for the given night, newest first.
// Ties on created_at are broken by descending id, i.e. insertion order.
func (r *BookingRepo) ListByNight(ctx context.Context, nightID uint64) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings
	           WHERE night_id = ?
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, nightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// DeleteTx removes the booking row within the given transaction. It
// returns ErrBookingNotFound when no row was deleted. Reserved seats must
// be removed in the same transaction (see ReservedSeatRepo.DeleteByBookingTx)
// so readers never observe a dangling seat row.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `DELETE FROM bookings WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
