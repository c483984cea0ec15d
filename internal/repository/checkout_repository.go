package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// CheckoutRepo commits a checkout as one database transaction: the order
// row, its items, and the sale of every ticketed seat. The source system
// ran the seat write and the order write as two separate requests, which
// left a partial-failure window; folding them into one transaction
// removes it.
type CheckoutRepo struct {
	db     *sql.DB
	orders *OrderRepo
	seats  *SeatRepo
}

// NewCheckoutRepo returns a CheckoutRepo using the given repositories
// for the individual statements.
func NewCheckoutRepo(db *sql.DB, orders *OrderRepo, seats *SeatRepo) *CheckoutRepo {
	return &CheckoutRepo{db: db, orders: orders, seats: seats}
}

// Commit persists the order and marks its ticket seats sold atomically.
// On any failure nothing is visible: a seat conflict rolls back the
// order insert, and a failed order insert never touches the seats. The
// order's ID and CreatedAt are populated on success.
func (r *CheckoutRepo) Commit(ctx context.Context, o *model.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.orders.CreateTx(ctx, tx, o); err != nil {
		return err
	}
	if err := r.orders.CreateItemsBulkTx(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}
	for showtimeID, refs := range ticketSeatRefs(o.Items) {
		if err := r.seats.SetStatusTx(ctx, tx, showtimeID, refs, model.SeatSold); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ticketSeatRefs groups the seat references of ticket items by showtime
// so each showtime gets a single batch write.
func ticketSeatRefs(items []model.OrderItem) map[uint64][]model.SeatRef {
	grouped := make(map[uint64][]model.SeatRef)
	for _, it := range items {
		ref, ok := it.SeatRef()
		if !ok {
			continue
		}
		grouped[*it.ShowtimeID] = append(grouped[*it.ShowtimeID], ref)
	}
	return grouped
}
