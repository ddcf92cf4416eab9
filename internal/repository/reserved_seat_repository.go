package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/tavolo/night-booking/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number raised when an insert
// violates a unique key (here: uq_night_seat on (night_id, seat_id)).
const mysqlDuplicateEntry = 1062

// ReservedSeatRepo encapsulates database operations for reserved_seats.
// One row exists per booked seat per night; the unique key on
// (night_id, seat_id) is what actually prevents double-booking under
// concurrency, with the application-level conflict check acting only as a
// fast path for conflicts visible at check time.
type ReservedSeatRepo struct {
	db *sql.DB
}

// NewReservedSeatRepo constructs a ReservedSeatRepo given a DB handle.
func NewReservedSeatRepo(db *sql.DB) *ReservedSeatRepo {
	return &ReservedSeatRepo{db: db}
}

// FilterReservedTx returns the subset of seatIDs that already have a
// reserved-seat row for the night, preserving the order of the input
// slice. It runs inside the provided transaction so the check and the
// subsequent insert observe the same snapshot. Passing an empty slice
// returns nil.
func (r *ReservedSeatRepo) FilterReservedTx(ctx context.Context, tx *sql.Tx, nightID uint64, seatIDs []string) ([]string, error) {
	return filterReserved(ctx, tx, nightID, seatIDs)
}

// FilterReserved is like FilterReservedTx but runs outside a transaction.
// It is used to recover the conflicting seat ids after a bulk insert lost
// a race and failed on the unique key.
func (r *ReservedSeatRepo) FilterReserved(ctx context.Context, nightID uint64, seatIDs []string) ([]string, error) {
	return filterReserved(ctx, r.db, nightID, seatIDs)
}

// querier abstracts *sql.DB and *sql.Tx for read queries.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func filterReserved(ctx context.Context, q querier, nightID uint64, seatIDs []string) ([]string, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, 0, len(seatIDs))
	args := make([]any, 0, len(seatIDs)+1)
	args = append(args, nightID)
	for _, id := range seatIDs {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	query := `SELECT seat_id FROM reserved_seats WHERE night_id = ? AND seat_id IN (` +
		strings.Join(placeholders, ",") + `)`
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	taken := make(map[string]struct{}, len(seatIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		taken[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Report conflicts in request order.
	var conflicting []string
	for _, id := range seatIDs {
		if _, ok := taken[id]; ok {
			conflicting = append(conflicting, id)
		}
	}
	return conflicting, nil
}

// CreateBulkTx inserts multiple reserved_seats rows in a single statement
// within the provided transaction. Each row must reference the owning
// booking. When a concurrent booking already claimed one of the seats,
// the statement fails on the uq_night_seat unique key; IsSeatTaken
// recognises that failure. Passing an empty slice has no effect.
func (r *ReservedSeatRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, seats []model.ReservedSeat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO reserved_seats (night_id, booking_id, table_id, seat_id) VALUES `
	args := make([]any, 0, len(seats)*4)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, s.NightID, s.BookingID, s.TableID, s.SeatID)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// IsSeatTaken reports whether err is the MySQL duplicate-entry error, i.e.
// a reserved-seat insert lost the race for a (night_id, seat_id) pair.
func IsSeatTaken(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// ListByNight returns all reserved seats for the night, each hydrated
// with the customer name of its owning booking. The join is LEFT so a
// seat whose booking is missing (which the cascade delete should make
// impossible) comes back with a null name instead of an error. Rows are
// ordered by insertion for deterministic output.
func (r *ReservedSeatRepo) ListByNight(ctx context.Context, nightID uint64) ([]model.HydratedReservedSeat, error) {
	const q = `SELECT rs.id, rs.night_id, rs.booking_id, rs.table_id, rs.seat_id, rs.created_at,
	                  b.customer_name
	           FROM reserved_seats rs
	           LEFT JOIN bookings b ON b.id = rs.booking_id
	           WHERE rs.night_id = ?
	           ORDER BY rs.id ASC`
	rows, err := r.db.QueryContext(ctx, q, nightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]model.HydratedReservedSeat, 0)
	for rows.Next() {
		var s model.HydratedReservedSeat
		var name sql.NullString
		if err := rows.Scan(
			&s.ID, &s.NightID, &s.BookingID, &s.TableID, &s.SeatID, &s.CreatedAt,
			&name,
		); err != nil {
			return nil, err
		}
		if name.Valid {
			v := name.String
			s.BookingCustomerName = &v
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seats, nil
}

// DeleteByBookingTx removes all reserved seats owned by the booking within
// the given transaction and returns the number of rows deleted. It is the
// cascade half of booking deletion and must run in the same transaction as
// the booking delete.
func (r *ReservedSeatRepo) DeleteByBookingTx(ctx context.Context, tx *sql.Tx, bookingID uint64) (int64, error) {
	const q = `DELETE FROM reserved_seats WHERE booking_id = ?`
	res, err := tx.ExecContext(ctx, q, bookingID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
