// Package repository defines error values that are shared across the data
// access layer. Sentinel values let handlers distinguish failure scenarios
// without string matching, and SeatConflictError carries the full list of
// conflicting seat ids so operators can be told about every problem seat
// at once instead of one per attempt.
package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNightNotFound indicates that a night was not located in the DB.
// Handlers should translate this into an HTTP 404 response.
var ErrNightNotFound = errors.New("night not found")

// ErrBookingNotFound indicates that a booking was not located in the DB.
// Deleting an already-deleted booking yields this error rather than a
// silent no-op; callers must treat it as terminal.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateSeat indicates that the same seat id was submitted twice in
// one booking request. The request is rejected before any write.
var ErrDuplicateSeat = errors.New("duplicate seat ids in booking request")

// SeatConflictError reports that one or more requested seats already have
// a reserved-seat row for the target night. It is returned both by the
// pre-insert conflict check and when a concurrent writer wins the race and
// the insert trips the (night_id, seat_id) unique key, so the caller
// experience is uniform regardless of which writer lost.
type SeatConflictError struct {
	SeatIDs []string // conflicting seat ids, in request order
}

// Error implements the error interface.
func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("one or more seats are already reserved: %s", strings.Join(e.SeatIDs, ", "))
}

// AsSeatConflict unwraps err into a *SeatConflictError when possible.
func AsSeatConflict(err error) (*SeatConflictError, bool) {
	var conflict *SeatConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
