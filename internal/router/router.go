package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/tavolo/night-booking/internal/handler"
)

// RegisterRoutes registers routes that need no handler state on the
// provided Echo instance: the health check and the static seat-map
// registry endpoints.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers or monitoring systems to verify the service is up.
	e.GET("/healthz", handler.Health)
	// Static floor-plan registry: which seat ids belong to which table.
	e.GET("/v1/seatmap", handler.ListTables)
	e.GET("/v1/seatmap/:tableId", handler.GetTableSeats)
}

// RegisterNights registers the read-only night lookup endpoints. Nights
// are addressed by their stable short id, the token the floor plan URLs
// carry (e.g. "/night/1").
func RegisterNights(e *echo.Echo, n *handler.NightHandler) {
	// All nights, active first then by short id.
	e.GET("/v1/nights", n.ListNights)
	// Point lookup by the human-facing URL token.
	e.GET("/v1/nights/:shortId", n.GetNight)
}

// RegisterBookings registers the booking engine endpoints. Night-scoped
// routes share the :shortId key with the night lookup; bookings are
// addressed by their numeric id. The rate limiter applies to the two
// mutations only; reads stay unlimited so the floor plan can poll
// reserved-seat state freely.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, limit echo.MiddlewareFunc) {
	e.POST("/v1/nights/:shortId/bookings", b.CreateBooking, limit)
	e.DELETE("/v1/bookings/:id", b.DeleteBooking, limit)

	e.GET("/v1/nights/:shortId/bookings", b.ListBookings)
	e.GET("/v1/nights/:shortId/reserved-seats", b.ListReservedSeats)
	e.GET("/v1/bookings/:id", b.GetBooking)
}
