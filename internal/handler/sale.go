package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/model"
)

// SaleStore is the slice of the sale repository the receipt lookup needs.
type SaleStore interface {
	GetByFolio(ctx context.Context, folio string) (model.Sale, error)
}

// SaleHandler serves the receipt lookup behind the QR code on tickets.
type SaleHandler struct {
	Sales SaleStore
}

// NewSaleHandler returns a SaleHandler backed by the given sale store.
func NewSaleHandler(sales SaleStore) *SaleHandler { return &SaleHandler{Sales: sales} }

// GetSale handles GET /api/sales/:folio. The sale row is written
// asynchronously after checkout, so a folio can briefly 404 before the
// consumer catches up.
func (h *SaleHandler) GetSale(c echo.Context) error {
	folio := strings.TrimSpace(c.Param("folio"))
	if folio == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "folio is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sale, err := h.Sales.GetByFolio(ctx, folio)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "sale not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, sale)
}
