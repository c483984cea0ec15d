package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// ProductRepo provides CRUD operations for the concession catalog.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo returns a new ProductRepo bound to the given database.
func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns all products ordered by id.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	const q = `SELECT id, sku, name, COALESCE(description, ''), price, stock, category_id, image_url
	           FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.CategoryID, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Create inserts a product and populates its generated ID.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	const q = `INSERT INTO products (sku, name, description, price, stock, category_id, image_url)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, p.SKU, p.Name, p.Description, p.Price,
		p.Stock, p.CategoryID, p.ImageURL)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Update rewrites a product in place. It returns sql.ErrNoRows when the
// id does not exist.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	const q = `UPDATE products
	           SET sku = ?, name = ?, description = ?, price = ?, stock = ?, category_id = ?, image_url = ?
	           WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, p.SKU, p.Name, p.Description, p.Price,
		p.Stock, p.CategoryID, p.ImageURL, p.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a product. It returns sql.ErrNoRows for unknown ids.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
