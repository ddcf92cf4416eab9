package model

import "time"

// Booking status values. The schema models a cancelled state, but the only
// mutation exposed today is a hard delete, so persisted rows are always
// confirmed.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a customer's reservation of one or more seats for a
// single night. SeatIDs and TableIDs are parallel lists with positional
// correspondence: TableIDs[i] is the table that owns SeatIDs[i]. A booking
// owns one ReservedSeat row per seat; deleting the booking deletes them.
//
// Fields:
//
//	ID            – primary key identifier.
//	NightID       – night the seats are booked for.
//	CustomerName  – name of the customer.
//	CustomerPhone – phone number of the customer.
//	SeatIDs       – global seat identifiers, unique within the booking.
//	TableIDs      – owning table per seat, parallel to SeatIDs.
//	Status        – confirmed or cancelled.
//	Notes         – optional free-form notes.
//	CreatedAt     – creation timestamp.
type Booking struct {
	ID            uint64    `json:"id"`             // bookings.id
	NightID       uint64    `json:"night_id"`       // bookings.night_id
	CustomerName  string    `json:"customer_name"`  // bookings.customer_name
	CustomerPhone string    `json:"customer_phone"` // bookings.customer_phone
	SeatIDs       []string  `json:"seat_ids"`       // bookings.seat_ids (JSON array)
	TableIDs      []string  `json:"table_ids"`      // bookings.table_ids (JSON array)
	Status        string    `json:"status"`         // bookings.status
	Notes         *string   `json:"notes,omitempty"` // bookings.notes (nullable)
	CreatedAt     time.Time `json:"created_at"`     // bookings.created_at
}
