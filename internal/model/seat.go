package model

import (
	"strconv"
	"strings"
)

// Seat status values. A seat row exists in the database only after its
// first write; everything else is presented as "available".
const (
	SeatAvailable = "available"
	SeatReserved  = "reserved"
	SeatSold      = "sold"
)

// DefaultRows are the row labels of the standard auditorium layout.
var DefaultRows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// SeatsPerRow is the number of seats in every row of the default grid.
const SeatsPerRow = 12

// VIPRows are the only rows that may be booked in a room of type "vip".
var VIPRows = map[string]bool{"I": true, "J": true}

// Seat is one cell of a showtime's seat grid.
type Seat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// SeatRef names a seat by position without carrying a status.
type SeatRef struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

// Label returns the display form of the reference, e.g. "B7".
func (r SeatRef) Label() string { return r.Row + strconv.Itoa(r.Number) }

// Valid reports whether the reference addresses a seat of the default
// grid. Anything outside it is rejected as a malformed seat reference.
func (r SeatRef) Valid() bool {
	if r.Number < 1 || r.Number > SeatsPerRow {
		return false
	}
	for _, row := range DefaultRows {
		if r.Row == row {
			return true
		}
	}
	return false
}

// ValidSeatStatus reports whether s is a status clients may request.
// "available" is the implicit default and never written directly.
func ValidSeatStatus(s string) bool {
	return s == SeatReserved || s == SeatSold
}

// DefaultGrid synthesizes the full default seat grid, all available. It is
// returned for showtimes that have no persisted seat rows yet.
func DefaultGrid() []Seat {
	grid := make([]Seat, 0, len(DefaultRows)*SeatsPerRow)
	for _, row := range DefaultRows {
		for n := 1; n <= SeatsPerRow; n++ {
			grid = append(grid, Seat{Row: row, Number: n, Status: SeatAvailable})
		}
	}
	return grid
}

// MergeGrid overlays persisted seat rows onto the default grid so that a
// partially materialized showtime still presents every seat. Persisted
// seats outside the default layout are appended at the end.
func MergeGrid(persisted []Seat) []Seat {
	grid := DefaultGrid()
	index := make(map[SeatRef]int, len(grid))
	for i, s := range grid {
		index[SeatRef{Row: s.Row, Number: s.Number}] = i
	}
	for _, s := range persisted {
		if i, ok := index[SeatRef{Row: s.Row, Number: s.Number}]; ok {
			grid[i].Status = s.Status
		} else {
			grid = append(grid, s)
		}
	}
	return grid
}

// RowAllowedInRoom applies the VIP-room rule: rooms of type "vip" only
// sell seats in the VIP rows, every other room type allows all rows.
func RowAllowedInRoom(roomType, row string) bool {
	if !strings.EqualFold(roomType, "vip") {
		return true
	}
	return VIPRows[row]
}
