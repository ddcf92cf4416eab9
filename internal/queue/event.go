// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully created.
// It contains enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID    uint64   `json:"booking_id"`
	NightID      uint64   `json:"night_id"`
	NightShortID string   `json:"night_short_id"`
	CustomerName string   `json:"customer_name"`
	SeatIDs      []string `json:"seat_ids"`
	TableIDs     []string `json:"table_ids"`
	CreatedAt    string   `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is deleted and its
// seats are released.
type BookingCancelledEvent struct {
	BookingID     uint64   `json:"booking_id"`
	NightID       uint64   `json:"night_id"`
	CustomerName  string   `json:"customer_name"`
	SeatIDs       []string `json:"seat_ids"`
	SeatsReleased int64    `json:"seats_released"`
	CancelledAt   string   `json:"cancelled_at"`
}
