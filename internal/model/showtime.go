package model

import "github.com/shopspring/decimal"

// Showtime is a scheduled screening of a movie in a room. It is
// immutable once created; seats and ticket order items reference it.
//
// ShowDate is YYYY-MM-DD and ShowTime HH:MM:SS, as stored in MySQL.
type Showtime struct {
	ID       uint64          `json:"id"`
	MovieID  uint64          `json:"movie_id"`
	RoomID   uint64          `json:"room_id"`
	ShowDate string          `json:"show_date"`
	ShowTime string          `json:"show_time"`
	Price    decimal.Decimal `json:"price"`
}
