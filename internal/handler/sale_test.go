package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlightcine/starlight-api/internal/mocks"
	"github.com/starlightcine/starlight-api/internal/model"
)

func newSaleContext(folio string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sales/"+folio, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folio")
	c.SetParamValues(folio)
	return c, rec
}

func TestGetSale(t *testing.T) {
	sales := &mocks.MockSaleStore{
		GetByFolioFunc: func(ctx context.Context, folio string) (model.Sale, error) {
			assert.Equal(t, "STAR-1756600000000", folio)
			return model.Sale{
				ID:      1,
				Folio:   folio,
				OrderID: 42,
				Total:   decimal.RequireFromString("85.00"),
			}, nil
		},
	}
	h := NewSaleHandler(sales)

	c, rec := newSaleContext("STAR-1756600000000")
	require.NoError(t, h.GetSale(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"folio":"STAR-1756600000000"`)
}

func TestGetSaleNotFound(t *testing.T) {
	sales := &mocks.MockSaleStore{
		GetByFolioFunc: func(ctx context.Context, folio string) (model.Sale, error) {
			return model.Sale{}, sql.ErrNoRows
		},
	}
	h := NewSaleHandler(sales)

	c, rec := newSaleContext("STAR-0")
	require.NoError(t, h.GetSale(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
