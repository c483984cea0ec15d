package model

import "github.com/shopspring/decimal"

// Product is a concession catalog entry.
type Product struct {
	ID          uint64          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uint64          `json:"category_id"`
	ImageURL    string          `json:"image_url"`
}

// Category groups concession products.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
