package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/night-booking/internal/cache"
	"github.com/tavolo/night-booking/internal/model"
	"github.com/tavolo/night-booking/internal/queue"
	"github.com/tavolo/night-booking/internal/repository"
	queue_publisher "github.com/tavolo/night-booking/internal/service"
)

// BookingHandler groups the repositories required to create and cancel
// bookings and to serve the per-night read projections. Critical DB
// operations run inside a transaction; the (night_id, seat_id) unique key
// is the last line of defense against concurrent double-booking, with the
// in-transaction conflict check acting as the fast path.
type BookingHandler struct {
	NightRepo        *repository.NightRepo        // night existence checks and event hydration
	BookingRepo      *repository.BookingRepo      // booking rows; also owns the DB handle for transactions
	ReservedSeatRepo *repository.ReservedSeatRepo // per-seat rows and conflict checks
	Cache            *cache.NightCache            // per-night reserved-seat cache (inert when Redis is absent)
}

// NewBookingHandler constructs a BookingHandler with the provided
// dependencies. All repositories must be non-nil; the cache may be inert
// but not nil.
func NewBookingHandler(nightRepo *repository.NightRepo, bookingRepo *repository.BookingRepo, reservedSeatRepo *repository.ReservedSeatRepo, nightCache *cache.NightCache) *BookingHandler {
	if nightRepo == nil || bookingRepo == nil || reservedSeatRepo == nil || nightCache == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		NightRepo:        nightRepo,
		BookingRepo:      bookingRepo,
		ReservedSeatRepo: reservedSeatRepo,
		Cache:            nightCache,
	}
}

// seatSelection is one requested seat in a booking request body.
type seatSelection struct {
	SeatID  string `json:"seat_id"`
	TableID string `json:"table_id"`
}

// createBookingRequest is the body of POST /v1/nights/:id/bookings.
type createBookingRequest struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Seats         []seatSelection `json:"seats"`
	Notes         *string         `json:"notes"`
}

// nightFromPath resolves the night addressed by the :shortId path
// parameter. When the night cannot be resolved it writes the error
// response and returns a nil night; callers must return the accompanying
// error value in that case.
func (h *BookingHandler) nightFromPath(c echo.Context) (*model.Night, error) {
	shortID := c.Param("shortId")
	if shortID == "" {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid night short id"})
	}
	night, err := h.NightRepo.GetByShortID(c.Request().Context(), shortID)
	if err != nil {
		if errors.Is(err, repository.ErrNightNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "night not found"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return night, nil
}

// CreateBooking handles POST /v1/nights/:id/bookings. It validates the
// request (non-empty seat list, no duplicate seat ids), checks every
// requested seat against the (night_id, seat_id) index, and on success
// inserts the booking row plus one reserved-seat row per seat in a single
// transaction. A request with duplicate seat ids fails with 400 before
// any write; a request containing already-reserved seats fails with 409
// listing every conflicting seat id. When a concurrent request wins the
// race for a seat after the check passed, the bulk insert trips the
// unique key and the handler responds with the same 409 shape, so the
// caller experience is uniform regardless of which writer lost.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	night, errResp := h.nightFromPath(c)
	if night == nil {
		return errResp
	}
	nightID := night.ID
	var body createBookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerName == "" || body.CustomerPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name and customer_phone are required"})
	}
	if len(body.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats is required"})
	}
	seatIDs := make([]string, 0, len(body.Seats))
	tableIDs := make([]string, 0, len(body.Seats))
	seen := make(map[string]struct{}, len(body.Seats))
	for _, s := range body.Seats {
		if s.SeatID == "" || s.TableID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "each seat requires seat_id and table_id"})
		}
		if _, ok := seen[s.SeatID]; ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": repository.ErrDuplicateSeat.Error()})
		}
		seen[s.SeatID] = struct{}{}
		seatIDs = append(seatIDs, s.SeatID)
		tableIDs = append(tableIDs, s.TableID)
	}
	ctx := c.Request().Context()
	tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Conflict fast path: reject every seat already reserved at check time.
	conflicting, err := h.ReservedSeatRepo.FilterReservedTx(ctx, tx, nightID, seatIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check seat availability"})
	}
	if len(conflicting) > 0 {
		return seatConflictResponse(c, &repository.SeatConflictError{SeatIDs: conflicting})
	}

	booking := &model.Booking{
		NightID:       nightID,
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		SeatIDs:       seatIDs,
		TableIDs:      tableIDs,
		Notes:         body.Notes,
	}
	if err := h.BookingRepo.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	seats := make([]model.ReservedSeat, 0, len(seatIDs))
	for i, seatID := range seatIDs {
		seats = append(seats, model.ReservedSeat{
			NightID:   nightID,
			BookingID: booking.ID,
			TableID:   tableIDs[i],
			SeatID:    seatID,
		})
	}
	if err := h.ReservedSeatRepo.CreateBulkTx(ctx, tx, seats); err != nil {
		if repository.IsSeatTaken(err) {
			// A concurrent booking won the race after our check. Re-read
			// outside the aborted transaction to report which seats lost.
			conflicting, qerr := h.ReservedSeatRepo.FilterReserved(ctx, nightID, seatIDs)
			if qerr != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check seat availability"})
			}
			return seatConflictResponse(c, &repository.SeatConflictError{SeatIDs: conflicting})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reserve seats"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	h.Cache.Invalidate(ctx, nightID)
	event := queue.BookingCreatedEvent{
		BookingID:    booking.ID,
		NightID:      nightID,
		NightShortID: night.ShortID,
		CustomerName: booking.CustomerName,
		SeatIDs:      booking.SeatIDs,
		TableIDs:     booking.TableIDs,
		CreatedAt:    booking.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingCreated(context.Background(), event) }()

	return c.JSON(http.StatusCreated, echo.Map{"booking_id": booking.ID})
}

// seatConflictResponse renders a SeatConflictError as the uniform 409 body.
func seatConflictResponse(c echo.Context, conflict *repository.SeatConflictError) error {
	return c.JSON(http.StatusConflict, echo.Map{
		"error":                "one or more seats are already reserved",
		"conflicting_seat_ids": conflict.SeatIDs,
	})
}

// DeleteBooking handles DELETE /v1/bookings/:id. It removes the booking
// and all of its reserved-seat rows in one transaction, so readers never
// observe a seat row without its booking or vice versa. Deleting an
// already-deleted booking responds 404, never a silent no-op.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx := c.Request().Context()
	tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the booking row so concurrent deletes of the same id serialize;
	// the loser sees 404.
	booking, err := h.BookingRepo.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	released, err := h.ReservedSeatRepo.DeleteByBookingTx(ctx, tx, bookingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release seats"})
	}
	if err := h.BookingRepo.DeleteTx(ctx, tx, bookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	h.Cache.Invalidate(ctx, booking.NightID)
	event := queue.BookingCancelledEvent{
		BookingID:     booking.ID,
		NightID:       booking.NightID,
		CustomerName:  booking.CustomerName,
		SeatIDs:       booking.SeatIDs,
		SeatsReleased: released,
		CancelledAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingCancelled(context.Background(), event) }()

	return c.NoContent(http.StatusNoContent)
}

// GetBooking handles GET /v1/bookings/:id. Simple point lookup; responds
// 404 when the booking does not exist.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	booking, err := h.BookingRepo.GetByID(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": booking})
}

// ListBookings handles GET /v1/nights/:id/bookings. It returns all
// bookings for the night, newest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	night, errResp := h.nightFromPath(c)
	if night == nil {
		return errResp
	}
	ctx := c.Request().Context()
	bookings, err := h.BookingRepo.ListByNight(ctx, night.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// ListReservedSeats handles GET /v1/nights/:id/reserved-seats. It returns
// every reserved seat for the night hydrated with the owning booking's
// customer name. Responses are served from the per-night cache when warm;
// the cache is invalidated by every booking mutation for the night.
func (h *BookingHandler) ListReservedSeats(c echo.Context) error {
	night, errResp := h.nightFromPath(c)
	if night == nil {
		return errResp
	}
	ctx := c.Request().Context()
	if seats, ok := h.Cache.GetReservedSeats(ctx, night.ID); ok {
		return c.JSON(http.StatusOK, echo.Map{"items": seats})
	}
	seats, err := h.ReservedSeatRepo.ListByNight(ctx, night.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reserved seats"})
	}
	h.Cache.SetReservedSeats(ctx, night.ID, seats)
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}
