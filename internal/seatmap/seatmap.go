// Package seatmap is the static registry mapping each venue table to the
// ordered list of global seat identifiers it owns. Seat ids are strings
// derived from the floor plan's fixed numbering; the booking engine treats
// them as opaque keys and only the UI layer needs this mapping to know
// which seats belong to which table.
package seatmap

import "strconv"

// tableLayout describes one table's block of the global seat numbering.
type tableLayout struct {
	start int // first seat number of the table's primary range
	seats int // total seats at the table
}

// layouts pins the starting seat number and seat count per table number.
// Tables 23-30 were expanded from 12 to 16 seats after the numbering was
// already in use; their four extension seats live in a 1000+ range so the
// original 12 seat ids stayed stable (see seatID).
var layouts = map[int]tableLayout{
	// Tables T1-T11 (bottom row, 8 seats each, seats 1-88)
	1: {1, 8}, 2: {9, 8}, 3: {17, 8}, 4: {25, 8}, 5: {33, 8}, 6: {41, 8},
	7: {49, 8}, 8: {57, 8}, 9: {65, 8}, 10: {73, 8}, 11: {81, 8},
	// Tables T12-T22 (top row, 16 seats each, seats 89-264)
	12: {89, 16}, 13: {105, 16}, 14: {121, 16}, 15: {137, 16}, 16: {153, 16},
	17: {169, 16}, 18: {185, 16}, 19: {201, 16}, 20: {217, 16}, 21: {233, 16},
	22: {249, 16},
	// Tables T23-T30 (left column, 12 original seats 265-360 plus 4
	// extension seats each in the 1001-1032 range)
	23: {265, 16}, 24: {277, 16}, 25: {289, 16}, 26: {301, 16},
	27: {313, 16}, 28: {325, 16}, 29: {337, 16}, 30: {349, 16},
	// Tables T31-T33 (8 seats each; the numbering has gaps between them)
	31: {361, 8}, 32: {373, 8}, 33: {381, 8},
	// Tables T34-T40 (right column, 16 seats each, seats 397-508)
	34: {397, 16}, 35: {413, 16}, 36: {429, 16}, 37: {445, 16},
	38: {461, 16}, 39: {477, 16}, 40: {493, 16},
}

// seatID computes the global seat id for a 1-based position at a table.
func seatID(tableNum int, layout tableLayout, position int) string {
	if tableNum >= 23 && tableNum <= 30 && position > 12 {
		// Extension seats keep the legacy 12-seat numbering intact.
		return strconv.Itoa(1000 + (tableNum-23)*4 + (position - 12))
	}
	return strconv.Itoa(layout.start + position - 1)
}

// SeatIDs returns the ordered global seat ids owned by the given table id
// (e.g. "T31"). The second return value is false when the table id is not
// part of the floor plan.
func SeatIDs(tableID string) ([]string, bool) {
	num, ok := parseTableID(tableID)
	if !ok {
		return nil, false
	}
	layout, ok := layouts[num]
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, layout.seats)
	for pos := 1; pos <= layout.seats; pos++ {
		ids = append(ids, seatID(num, layout, pos))
	}
	return ids, true
}

// TableIDs returns every table id of the floor plan in table-number order.
func TableIDs() []string {
	ids := make([]string, 0, len(layouts))
	for num := 1; num <= 40; num++ {
		if _, ok := layouts[num]; ok {
			ids = append(ids, "T"+strconv.Itoa(num))
		}
	}
	return ids
}

// parseTableID extracts the table number from a "T<n>" identifier.
func parseTableID(tableID string) (int, bool) {
	if len(tableID) < 2 || tableID[0] != 'T' {
		return 0, false
	}
	num, err := strconv.Atoi(tableID[1:])
	if err != nil || num < 1 {
		return 0, false
	}
	return num, true
}
