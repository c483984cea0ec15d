// Package queue defines the message payloads exchanged over the broker,
// the publisher used at checkout, and the background consumer that turns
// order events into sale receipt rows.
package queue

import "github.com/shopspring/decimal"

// OrderQueueName is the durable queue carrying order events.
const OrderQueueName = "order.created"

// OrderCreatedEvent is published when a checkout commits. It carries the
// folio and the tax breakdown so the sales consumer can write the
// receipt projection without querying the orders tables. Amounts are
// decimal strings on the wire.
type OrderCreatedEvent struct {
	OrderID       uint64          `json:"order_id"`
	Folio         string          `json:"folio"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Seats         []string        `json:"seats"`
	CreatedAt     string          `json:"created_at"`
}
