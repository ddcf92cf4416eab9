package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/night-booking/internal/repository"
)

// NightHandler serves read-only night lookups. Nights are seeded
// out-of-band, so no mutation endpoints exist here.
type NightHandler struct {
	NightRepo *repository.NightRepo
}

// NewNightHandler constructs a NightHandler. The repository must be non-nil.
func NewNightHandler(nightRepo *repository.NightRepo) *NightHandler {
	if nightRepo == nil {
		panic("nil repository passed to NewNightHandler")
	}
	return &NightHandler{NightRepo: nightRepo}
}

// ListNights handles GET /v1/nights. It returns every night ordered
// active-first, then lexicographically by short id. Nights without an
// active flag count as active.
func (h *NightHandler) ListNights(c echo.Context) error {
	nights, err := h.NightRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load nights"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": nights})
}

// GetNight handles GET /v1/nights/:shortId. The short id is the stable
// URL token the floor plan links with (e.g. "1"). It responds 404 when no
// night carries the short id.
func (h *NightHandler) GetNight(c echo.Context) error {
	shortID := c.Param("shortId")
	if shortID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid night short id"})
	}
	night, err := h.NightRepo.GetByShortID(c.Request().Context(), shortID)
	if err != nil {
		if errors.Is(err, repository.ErrNightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "night not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": night})
}
