package model

import "time"

// ReservedSeat is the per-seat record that enforces the one-booking-per-
// seat-per-night invariant: at most one row may exist for a given
// (NightID, SeatID) pair, guaranteed by a unique key at the storage layer.
// Rows are created in bulk with their owning booking and cascade-deleted
// with it. Seat ids are opaque strings assigned by the floor-plan registry;
// the engine never generates or decodes them.
//
// Fields:
//
//	ID        – primary key identifier.
//	NightID   – night the seat is reserved for.
//	BookingID – owning booking.
//	TableID   – table that owns the seat (e.g. "T31").
//	SeatID    – global seat identifier string (e.g. "373").
//	CreatedAt – creation timestamp.
type ReservedSeat struct {
	ID        uint64    `json:"id"`         // reserved_seats.id
	NightID   uint64    `json:"night_id"`   // reserved_seats.night_id
	BookingID uint64    `json:"booking_id"` // reserved_seats.booking_id
	TableID   string    `json:"table_id"`   // reserved_seats.table_id
	SeatID    string    `json:"seat_id"`    // reserved_seats.seat_id
	CreatedAt time.Time `json:"created_at"` // reserved_seats.created_at
}

// HydratedReservedSeat is the read-layer projection of a reserved seat:
// the row plus the customer name of its owning booking, joined at read
// time. The name is null when the owning booking cannot be found, which
// should not happen under the cascade-delete invariant but is handled
// rather than reported as an error.
type HydratedReservedSeat struct {
	ReservedSeat
	BookingCustomerName *string `json:"booking_customer_name"`
}
