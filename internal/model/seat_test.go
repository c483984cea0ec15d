package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrid(t *testing.T) {
	grid := DefaultGrid()
	require.Len(t, grid, len(DefaultRows)*SeatsPerRow)
	for _, s := range grid {
		assert.Equal(t, SeatAvailable, s.Status)
	}
	assert.Equal(t, Seat{Row: "A", Number: 1, Status: SeatAvailable}, grid[0])
	assert.Equal(t, Seat{Row: "J", Number: 12, Status: SeatAvailable}, grid[len(grid)-1])
}

func TestMergeGrid(t *testing.T) {
	persisted := []Seat{
		{Row: "A", Number: 1, Status: SeatSold},
		{Row: "A", Number: 2, Status: SeatSold},
		{Row: "C", Number: 7, Status: SeatReserved},
	}
	grid := MergeGrid(persisted)
	require.Len(t, grid, len(DefaultRows)*SeatsPerRow)

	byRef := make(map[SeatRef]string, len(grid))
	for _, s := range grid {
		byRef[SeatRef{Row: s.Row, Number: s.Number}] = s.Status
	}
	assert.Equal(t, SeatSold, byRef[SeatRef{Row: "A", Number: 1}])
	assert.Equal(t, SeatSold, byRef[SeatRef{Row: "A", Number: 2}])
	assert.Equal(t, SeatReserved, byRef[SeatRef{Row: "C", Number: 7}])
	assert.Equal(t, SeatAvailable, byRef[SeatRef{Row: "A", Number: 3}])
	assert.Equal(t, SeatAvailable, byRef[SeatRef{Row: "J", Number: 12}])
}

func TestMergeGridKeepsUnknownSeats(t *testing.T) {
	// A seat outside the default layout still shows up rather than
	// silently disappearing from the grid.
	grid := MergeGrid([]Seat{{Row: "K", Number: 1, Status: SeatSold}})
	require.Len(t, grid, len(DefaultRows)*SeatsPerRow+1)
	assert.Equal(t, Seat{Row: "K", Number: 1, Status: SeatSold}, grid[len(grid)-1])
}

func TestMergeGridEmpty(t *testing.T) {
	assert.Equal(t, DefaultGrid(), MergeGrid(nil))
}

func TestSeatRefValid(t *testing.T) {
	tests := []struct {
		ref  SeatRef
		want bool
	}{
		{SeatRef{"A", 1}, true},
		{SeatRef{"J", 12}, true},
		{SeatRef{"A", 0}, false},
		{SeatRef{"A", 13}, false},
		{SeatRef{"K", 1}, false},
		{SeatRef{"", 5}, false},
		{SeatRef{"a", 1}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ref.Valid(), "ref %s", tt.ref.Label())
	}
}

func TestSeatRefLabel(t *testing.T) {
	assert.Equal(t, "B7", SeatRef{Row: "B", Number: 7}.Label())
	assert.Equal(t, "J12", SeatRef{Row: "J", Number: 12}.Label())
}

func TestValidSeatStatus(t *testing.T) {
	assert.True(t, ValidSeatStatus(SeatReserved))
	assert.True(t, ValidSeatStatus(SeatSold))
	assert.False(t, ValidSeatStatus(SeatAvailable))
	assert.False(t, ValidSeatStatus("SOLD"))
	assert.False(t, ValidSeatStatus(""))
}

func TestRowAllowedInRoom(t *testing.T) {
	assert.True(t, RowAllowedInRoom("standard", "A"))
	assert.True(t, RowAllowedInRoom("standard", "I"))
	assert.True(t, RowAllowedInRoom("vip", "I"))
	assert.True(t, RowAllowedInRoom("VIP", "J"))
	assert.False(t, RowAllowedInRoom("vip", "A"))
	assert.False(t, RowAllowedInRoom("vip", "H"))
}
