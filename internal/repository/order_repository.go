package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/starlightcine/starlight-api/internal/model"
)

// OrderRepo provides data access to the orders and order_items tables.
// Orders are append-only: they are written once at checkout and never
// mutated or deleted.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateTx inserts a new order within the scope of an existing
// transaction and populates the generated ID and CreatedAt on the
// provided record. The caller must commit or roll back the transaction.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	const q = `INSERT INTO orders (customer_name, customer_email, total) VALUES (?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, o.CustomerName, o.CustomerEmail, o.Total)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)
	// Query back the row to populate the DB-assigned timestamp.
	const sel = `SELECT created_at FROM orders WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, o.ID).Scan(&o.CreatedAt)
}

// CreateItemsBulkTx inserts all items of an order in a single statement
// within the provided transaction. Passing an empty slice has no effect
// and returns nil.
func (r *OrderRepo) CreateItemsBulkTx(ctx context.Context, tx *sql.Tx, orderID uint64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO order_items
	          (order_id, item_type, showtime_id, seat_row, seat_number, product_id, quantity, unit_price, subtotal)
	          VALUES `
	args := make([]interface{}, 0, len(items)*9)
	for i, it := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args, orderID, it.Type, it.ShowtimeID, it.SeatRow, it.SeatNumber,
			it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// ListByEmail returns all orders for a customer email, newest first,
// with their items nested. An unknown email yields an empty slice.
func (r *OrderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	const q = `SELECT id, customer_name, customer_email, total, created_at
	           FROM orders
	           WHERE customer_email = ?
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	index := make(map[uint64]int)
	ids := make([]interface{}, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemQ := `SELECT id, order_id, item_type, showtime_id, seat_row, seat_number, product_id, quantity, unit_price, subtotal
	          FROM order_items
	          WHERE order_id IN (?` + strings.Repeat(",?", len(ids)-1) + `)
	          ORDER BY order_id, id`
	irows, err := r.db.QueryContext(ctx, itemQ, ids...)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var it model.OrderItem
		if err := irows.Scan(&it.ID, &it.OrderID, &it.Type, &it.ShowtimeID, &it.SeatRow,
			&it.SeatNumber, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, irows.Err()
}

// TicketDetail is one purchased ticket joined with its showtime, movie
// and room, as served by the tickets-by-email lookup.
type TicketDetail struct {
	OrderID    uint64          `json:"order_id"`
	ShowtimeID uint64          `json:"showtime_id"`
	MovieTitle string          `json:"movie_title"`
	RoomName   string          `json:"room_name"`
	ShowDate   string          `json:"show_date"`
	ShowTime   string          `json:"show_time"`
	SeatRow    string          `json:"seat_row"`
	SeatNumber int             `json:"seat_number"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// TicketsByEmail returns every ticket line purchased under the given
// email, newest order first.
func (r *OrderRepo) TicketsByEmail(ctx context.Context, email string) ([]TicketDetail, error) {
	const q = `SELECT oi.order_id, oi.showtime_id, m.title, ro.name,
	                  DATE_FORMAT(st.show_date, '%Y-%m-%d'), TIME_FORMAT(st.show_time, '%H:%i:%s'),
	                  oi.seat_row, oi.seat_number, oi.unit_price
	           FROM order_items oi
	           JOIN orders o    ON o.id = oi.order_id
	           JOIN showtimes st ON st.id = oi.showtime_id
	           JOIN movies m    ON m.id = st.movie_id
	           JOIN rooms ro    ON ro.id = st.room_id
	           WHERE oi.item_type = 'ticket' AND o.customer_email = ?
	           ORDER BY o.created_at DESC, oi.id`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tickets := make([]TicketDetail, 0)
	for rows.Next() {
		var t TicketDetail
		if err := rows.Scan(&t.OrderID, &t.ShowtimeID, &t.MovieTitle, &t.RoomName,
			&t.ShowDate, &t.ShowTime, &t.SeatRow, &t.SeatNumber, &t.UnitPrice); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
