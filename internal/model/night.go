package model

import "time"

// Night represents one scheduled event at the venue. Each night owns an
// independent seat-reservation namespace: the same physical seat can be
// booked once per night. Nights are created out-of-band (seed data) and
// are read-only from the booking engine's perspective.
//
// Fields:
//
//	ID         – primary key identifier.
//	ShortID    – stable human-facing URL token (e.g. "1"), unique.
//	Title      – display title of the night.
//	DateLabel  – display date string (e.g. "Sabato 15 Marzo 2025").
//	TimeLabel  – display time string (e.g. "20:00").
//	Color      – display color for the floor plan.
//	HoverColor – hover variant of the display color.
//	IsActive   – optional active flag; a missing flag counts as active.
//	CreatedAt  – creation timestamp.
type Night struct {
	ID         uint64    `json:"id"`          // nights.id
	ShortID    string    `json:"short_id"`    // nights.short_id
	Title      string    `json:"title"`       // nights.title
	DateLabel  string    `json:"date"`        // nights.date_label
	TimeLabel  string    `json:"time"`        // nights.time_label
	Color      string    `json:"color"`       // nights.color
	HoverColor string    `json:"hover_color"` // nights.hover_color
	IsActive   *bool     `json:"is_active,omitempty"` // nights.is_active (nullable)
	CreatedAt  time.Time `json:"created_at"`  // nights.created_at
}

// Active resolves the optional active flag; nights without the flag are
// treated as active.
func (n Night) Active() bool {
	return n.IsActive == nil || *n.IsActive
}
