package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order item kinds. A line is either a ticket (seat for a showtime) or a
// concession product; the kind tag decides which reference fields are set.
const (
	ItemTicket  = "ticket"
	ItemProduct = "product"
)

// Order is a committed purchase. Orders and their items are created once
// at checkout and never mutated afterwards.
type Order struct {
	ID            uint64          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem is one line of an order. Ticket lines carry ShowtimeID,
// SeatRow and SeatNumber; product lines carry ProductID. Quantity is
// always 1 for tickets.
type OrderItem struct {
	ID         uint64          `json:"id"`
	OrderID    uint64          `json:"order_id"`
	Type       string          `json:"type"`
	ShowtimeID *uint64         `json:"showtime_id,omitempty"`
	SeatRow    *string         `json:"seat_row,omitempty"`
	SeatNumber *int            `json:"seat_number,omitempty"`
	ProductID  *uint64         `json:"product_id,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// SeatRef returns the seat reference of a ticket line. ok is false for
// product lines or ticket lines with missing seat fields.
func (i OrderItem) SeatRef() (SeatRef, bool) {
	if i.Type != ItemTicket || i.ShowtimeID == nil || i.SeatRow == nil || i.SeatNumber == nil {
		return SeatRef{}, false
	}
	return SeatRef{Row: *i.SeatRow, Number: *i.SeatNumber}, true
}
