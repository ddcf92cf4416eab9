package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/night-booking/internal/seatmap"
)

// ListTables handles GET /v1/seatmap. It returns every table id of the
// floor plan in table-number order.
func ListTables(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": seatmap.TableIDs()})
}

// GetTableSeats handles GET /v1/seatmap/:tableId. It returns the ordered
// global seat ids owned by the table, straight from the static floor-plan
// registry. Unknown table ids respond 404.
func GetTableSeats(c echo.Context) error {
	tableID := c.Param("tableId")
	seatIDs, ok := seatmap.SeatIDs(tableID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"table_id": tableID,
		"seat_ids": seatIDs,
	})
}
