// Package service contains the checkout coordinator, which sequences
// order persistence, seat sale and the sale-ledger event as a single
// customer-visible operation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/queue"
)

// ErrInvalidInput is returned when the checkout request is missing the
// customer name, a well-formed email, or any items.
var ErrInvalidInput = errors.New("invalid input")

// Prices are tax-inclusive; the receipt breaks the total down at a
// fixed 16% rate, deriving the subtotal backward from the total.
var taxDivisor = decimal.NewFromFloat(1.16)

// folioPrefix is the brand prefix of customer-facing receipt folios.
const folioPrefix = "STAR"

// OrderCommitter persists an order, its items and its ticket seat sales
// as one atomic unit.
type OrderCommitter interface {
	Commit(ctx context.Context, o *model.Order) error
}

// EventPublisher emits the order.created event after a commit.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event queue.OrderCreatedEvent) error
}

// CheckoutService is the coordinator between the order ledger and the
// seat grid. It owns total computation, the folio, and the consistency
// contract: everything the customer paid for commits in one
// transaction, and only then is the receipt event published.
type CheckoutService struct {
	Ledger    OrderCommitter
	Publisher EventPublisher
}

// NewCheckoutService wires a CheckoutService from its collaborators.
func NewCheckoutService(ledger OrderCommitter, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{Ledger: ledger, Publisher: publisher}
}

// CheckoutResult is what the customer gets back: the order id, the
// folio for the QR receipt, and the amount breakdown.
type CheckoutResult struct {
	OrderID  uint64          `json:"order_id"`
	Folio    string          `json:"folio"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Checkout validates the cart, computes totals, commits the order with
// its seat sales atomically, and publishes the sale event. The order
// total is the sum of the item subtotals; each subtotal is recomputed
// here as unit price times quantity so the stored invariant
// total == sum(items.subtotal) holds regardless of client input.
//
// Publishing is best-effort: once the transaction committed, a broker
// failure is logged but does not fail the checkout.
func (s *CheckoutService) Checkout(ctx context.Context, name, email string, items []model.OrderItem) (CheckoutResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || !strings.Contains(email, "@") || len(items) == 0 {
		return CheckoutResult{}, ErrInvalidInput
	}

	total := decimal.Zero
	for i := range items {
		it := &items[i]
		if it.Type != model.ItemTicket && it.Type != model.ItemProduct {
			return CheckoutResult{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, it.Type)
		}
		if it.Type == model.ItemTicket {
			it.Quantity = 1 // tickets are always a single seat
			ref, ok := it.SeatRef()
			if !ok {
				return CheckoutResult{}, fmt.Errorf("%w: ticket item missing seat reference", ErrInvalidInput)
			}
			if !ref.Valid() {
				return CheckoutResult{}, fmt.Errorf("%w: invalid seat reference: %s", ErrInvalidInput, ref.Label())
			}
		}
		if it.Type == model.ItemProduct {
			if it.ProductID == nil || it.Quantity < 1 {
				return CheckoutResult{}, fmt.Errorf("%w: product item missing product or quantity", ErrInvalidInput)
			}
		}
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(it.Subtotal)
	}
	subtotal := total.Div(taxDivisor).Round(2)
	tax := total.Sub(subtotal)

	order := &model.Order{
		CustomerName:  name,
		CustomerEmail: email,
		Total:         total,
		Items:         items,
	}
	if err := s.Ledger.Commit(ctx, order); err != nil {
		return CheckoutResult{}, err
	}

	folio := fmt.Sprintf("%s-%d", folioPrefix, time.Now().UTC().UnixMilli())

	event := queue.OrderCreatedEvent{
		OrderID:       order.ID,
		Folio:         folio,
		CustomerName:  name,
		CustomerEmail: email,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Seats:         seatLabels(items),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Publisher.PublishOrderCreated(ctx, event); err != nil {
		log.Printf("checkout: order %d committed but event publish failed: %v", order.ID, err)
	}

	return CheckoutResult{
		OrderID:  order.ID,
		Folio:    folio,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}

func seatLabels(items []model.OrderItem) []string {
	labels := make([]string, 0)
	for _, it := range items {
		if ref, ok := it.SeatRef(); ok {
			labels = append(labels, ref.Label())
		}
	}
	return labels
}
