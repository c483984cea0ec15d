package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlightcine/starlight-api/internal/model"
)

type saleStoreFunc func(ctx context.Context, s *model.Sale) error

func (fn saleStoreFunc) Create(ctx context.Context, s *model.Sale) error { return fn(ctx, s) }

func TestHandleMessage(t *testing.T) {
	var got *model.Sale
	store := saleStoreFunc(func(ctx context.Context, s *model.Sale) error {
		got = s
		return nil
	})

	body := []byte(`{
		"order_id": 42,
		"folio": "STAR-1756600000000",
		"subtotal": "73.28",
		"tax": "11.72",
		"total": "85.00",
		"seats": ["B7"],
		"created_at": "2026-08-30T18:00:00Z"
	}`)
	require.NoError(t, handleMessage(body, store))

	require.NotNil(t, got)
	assert.Equal(t, "STAR-1756600000000", got.Folio)
	assert.Equal(t, uint64(42), got.OrderID)
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("73.28")))
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("11.72")))
	assert.True(t, got.Total.Equal(decimal.RequireFromString("85.00")))
}

func TestHandleMessageBadJSON(t *testing.T) {
	called := false
	store := saleStoreFunc(func(ctx context.Context, s *model.Sale) error {
		called = true
		return nil
	})
	err := handleMessage([]byte(`{not json`), store)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestHandleMessageMissingFolio(t *testing.T) {
	store := saleStoreFunc(func(ctx context.Context, s *model.Sale) error {
		t.Fatal("store must not be called for an incomplete event")
		return nil
	})
	err := handleMessage([]byte(`{"order_id":42}`), store)
	assert.Error(t, err)
}

func TestHandleMessageStoreError(t *testing.T) {
	store := saleStoreFunc(func(ctx context.Context, s *model.Sale) error {
		return errors.New("db down")
	})
	err := handleMessage([]byte(`{"order_id":42,"folio":"STAR-1"}`), store)
	assert.ErrorContains(t, err, "insert sale")
}
