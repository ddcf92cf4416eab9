package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatConflictError(t *testing.T) {
	conflict := &SeatConflictError{SeatIDs: []string{"41", "42"}}
	assert.Equal(t, "one or more seats are already reserved: 41, 42", conflict.Error())

	wrapped := fmt.Errorf("create booking: %w", conflict)
	got, ok := AsSeatConflict(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"41", "42"}, got.SeatIDs)

	_, ok = AsSeatConflict(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}
