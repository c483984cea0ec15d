package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// SaleRepo provides data access to the sales table, the receipt
// projection written by the order.created consumer.
type SaleRepo struct {
	db *sql.DB
}

// NewSaleRepo returns a new SaleRepo bound to the given database.
func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{db: db} }

// Create inserts a sale row. The folio is unique; a redelivered event
// for an already recorded folio is a no-op, which keeps the consumer
// idempotent.
func (r *SaleRepo) Create(ctx context.Context, s *model.Sale) error {
	const q = `INSERT INTO sales (folio, order_id, subtotal, tax, total)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE order_id = order_id`
	_, err := r.db.ExecContext(ctx, q, s.Folio, s.OrderID, s.Subtotal, s.Tax, s.Total)
	return err
}

// GetByFolio loads a sale by its folio. It returns sql.ErrNoRows when
// the folio is unknown.
func (r *SaleRepo) GetByFolio(ctx context.Context, folio string) (model.Sale, error) {
	const q = `SELECT id, folio, order_id, subtotal, tax, total, created_at
	           FROM sales WHERE folio = ? LIMIT 1`
	var s model.Sale
	err := r.db.QueryRowContext(ctx, q, folio).Scan(
		&s.ID, &s.Folio, &s.OrderID, &s.Subtotal, &s.Tax, &s.Total, &s.CreatedAt)
	return s, err
}
