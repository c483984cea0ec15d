package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/repository"
	"github.com/starlightcine/starlight-api/internal/service"
	appvalidator "github.com/starlightcine/starlight-api/internal/validator"
)

// CheckoutRunner is the coordinator the order handler drives.
type CheckoutRunner interface {
	Checkout(ctx context.Context, name, email string, items []model.OrderItem) (service.CheckoutResult, error)
}

// OrderReader is the slice of the order repository the handler needs
// for lookups.
type OrderReader interface {
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)
	TicketsByEmail(ctx context.Context, email string) ([]repository.TicketDetail, error)
}

// OrderHandler serves checkout and the order/ticket lookups.
type OrderHandler struct {
	Checkout CheckoutRunner
	Orders   OrderReader
	Validate *validator.Validate
}

// NewOrderHandler returns an OrderHandler wired to the coordinator and
// the order reader.
func NewOrderHandler(checkout CheckoutRunner, orders OrderReader, v *validator.Validate) *OrderHandler {
	return &OrderHandler{Checkout: checkout, Orders: orders, Validate: v}
}

// orderItemReq binds unit_price straight into a decimal (JSON string
// or number) so money never round-trips through float64.
type orderItemReq struct {
	Type       string          `json:"type" validate:"required,oneof=ticket product"`
	ShowtimeID *uint64         `json:"showtime_id"`
	SeatRow    *string         `json:"seat_row"`
	SeatNumber *int            `json:"seat_number"`
	ProductID  *uint64         `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type createOrderReq struct {
	CustomerName  string         `json:"customer_name" validate:"required"`
	CustomerEmail string         `json:"customer_email" validate:"required,email"`
	Items         []orderItemReq `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder handles POST /api/orders: the checkout. The request mixes
// ticket and product lines; the coordinator recomputes subtotals,
// commits everything in one transaction and returns the folio.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": appvalidator.Message(err)})
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if !it.UnitPrice.IsPositive() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unit_price must be greater than 0"})
		}
		items = append(items, model.OrderItem{
			Type:       it.Type,
			ShowtimeID: it.ShowtimeID,
			SeatRow:    it.SeatRow,
			SeatNumber: it.SeatNumber,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.Checkout.Checkout(ctx, req.CustomerName, req.CustomerEmail, items)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrShowtimeNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	case errors.Is(err, repository.ErrSeatConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrSeatNotAllowed):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"ok":       true,
		"order_id": result.OrderID,
		"folio":    result.Folio,
		"subtotal": result.Subtotal,
		"tax":      result.Tax,
		"total":    result.Total,
	})
}

// ListOrders handles GET /api/orders?email= and returns the customer's
// orders with nested items, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, orders)
}

// ListTickets handles GET /api/tickets?email= and returns the ticket
// lines the customer bought, joined with showtime, movie and room.
func (h *OrderHandler) ListTickets(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Orders.TicketsByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, tickets)
}
