package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatIDs_BottomRowTable(t *testing.T) {
	ids, ok := SeatIDs("T1")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids)

	ids, ok = SeatIDs("T11")
	require.True(t, ok)
	assert.Equal(t, "81", ids[0])
	assert.Equal(t, "88", ids[7])
}

func TestSeatIDs_TopRowTable(t *testing.T) {
	ids, ok := SeatIDs("T12")
	require.True(t, ok)
	require.Len(t, ids, 16)
	assert.Equal(t, "89", ids[0])
	assert.Equal(t, "104", ids[15])
}

func TestSeatIDs_ExpandedTableKeepsLegacyNumbering(t *testing.T) {
	// T23-T30 grew from 12 to 16 seats; the first 12 ids must stay stable
	// and the extension seats live in the 1000+ range.
	ids, ok := SeatIDs("T23")
	require.True(t, ok)
	require.Len(t, ids, 16)
	assert.Equal(t, "265", ids[0])
	assert.Equal(t, "276", ids[11])
	assert.Equal(t, []string{"1001", "1002", "1003", "1004"}, ids[12:])

	ids, ok = SeatIDs("T30")
	require.True(t, ok)
	assert.Equal(t, "349", ids[0])
	assert.Equal(t, []string{"1029", "1030", "1031", "1032"}, ids[12:])
}

func TestSeatIDs_NumberingGapsBetweenSmallTables(t *testing.T) {
	ids, ok := SeatIDs("T31")
	require.True(t, ok)
	assert.Equal(t, "361", ids[0])
	assert.Equal(t, "368", ids[7])

	// The floor plan skips 369-372.
	ids, ok = SeatIDs("T32")
	require.True(t, ok)
	assert.Equal(t, "373", ids[0])
}

func TestSeatIDs_UnknownTable(t *testing.T) {
	for _, id := range []string{"", "T0", "T41", "X3", "31"} {
		_, ok := SeatIDs(id)
		assert.False(t, ok, "table %q should be unknown", id)
	}
}

func TestSeatIDs_GloballyUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, tableID := range TableIDs() {
		ids, ok := SeatIDs(tableID)
		require.True(t, ok)
		for _, seatID := range ids {
			owner, dup := seen[seatID]
			require.False(t, dup, "seat %s owned by both %s and %s", seatID, owner, tableID)
			seen[seatID] = tableID
		}
	}
}

func TestTableIDs_Order(t *testing.T) {
	ids := TableIDs()
	require.Len(t, ids, 40)
	assert.Equal(t, "T1", ids[0])
	assert.Equal(t, "T40", ids[39])
}
