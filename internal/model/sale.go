package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the receipt projection of a committed order, written
// asynchronously by the order.created consumer and looked up by folio
// for the QR receipt view. Amounts carry the tax breakdown derived from
// the tax-inclusive order total.
type Sale struct {
	ID        uint64          `json:"id"`
	Folio     string          `json:"folio"`
	OrderID   uint64          `json:"order_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
