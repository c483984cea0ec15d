// Package mocks provides hand-written test doubles for the small
// interfaces the handlers and services depend on. Each mock exposes a
// func field per method so tests can script behavior inline.
package mocks

import (
	"context"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/queue"
	"github.com/starlightcine/starlight-api/internal/repository"
	"github.com/starlightcine/starlight-api/internal/service"
)

type MockSeatStore struct {
	GetByShowtimeFunc func(ctx context.Context, showtimeID uint64) ([]model.Seat, error)
	SetStatusFunc     func(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error
}

func (m *MockSeatStore) GetByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
	return m.GetByShowtimeFunc(ctx, showtimeID)
}

func (m *MockSeatStore) SetStatus(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
	return m.SetStatusFunc(ctx, showtimeID, refs, status)
}

type MockUserStore struct {
	GetByEmailFunc func(ctx context.Context, email string) (model.User, error)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

type MockCheckoutRunner struct {
	CheckoutFunc func(ctx context.Context, name, email string, items []model.OrderItem) (service.CheckoutResult, error)
}

func (m *MockCheckoutRunner) Checkout(ctx context.Context, name, email string, items []model.OrderItem) (service.CheckoutResult, error) {
	return m.CheckoutFunc(ctx, name, email, items)
}

type MockOrderReader struct {
	ListByEmailFunc    func(ctx context.Context, email string) ([]model.Order, error)
	TicketsByEmailFunc func(ctx context.Context, email string) ([]repository.TicketDetail, error)
}

func (m *MockOrderReader) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return m.ListByEmailFunc(ctx, email)
}

func (m *MockOrderReader) TicketsByEmail(ctx context.Context, email string) ([]repository.TicketDetail, error) {
	return m.TicketsByEmailFunc(ctx, email)
}

type MockOrderCommitter struct {
	CommitFunc func(ctx context.Context, o *model.Order) error
}

func (m *MockOrderCommitter) Commit(ctx context.Context, o *model.Order) error {
	return m.CommitFunc(ctx, o)
}

type MockEventPublisher struct {
	PublishOrderCreatedFunc func(ctx context.Context, event queue.OrderCreatedEvent) error
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, event queue.OrderCreatedEvent) error {
	return m.PublishOrderCreatedFunc(ctx, event)
}

type MockSaleStore struct {
	CreateFunc     func(ctx context.Context, s *model.Sale) error
	GetByFolioFunc func(ctx context.Context, folio string) (model.Sale, error)
}

func (m *MockSaleStore) Create(ctx context.Context, s *model.Sale) error {
	return m.CreateFunc(ctx, s)
}

func (m *MockSaleStore) GetByFolio(ctx context.Context, folio string) (model.Sale, error) {
	return m.GetByFolioFunc(ctx, folio)
}
