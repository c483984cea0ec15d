package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/repository"
)

// SeatStore is the slice of the seat repository the seat handler needs.
type SeatStore interface {
	GetByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error)
	SetStatus(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error
}

// SeatHandler serves the seat grid of a showtime and the batch status
// write used to reserve or sell seats.
type SeatHandler struct {
	Seats SeatStore
}

// NewSeatHandler returns a SeatHandler backed by the given seat store.
func NewSeatHandler(seats SeatStore) *SeatHandler { return &SeatHandler{Seats: seats} }

// GetSeats handles GET /api/showtimes/:id/seats. Seat rows exist only
// once written, so the persisted rows are overlaid on the default grid
// and the full grid is returned; a fresh showtime comes back entirely
// available.
func (h *SeatHandler) GetSeats(c echo.Context) error {
	showtimeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || showtimeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seats, err := h.Seats.GetByShowtime(ctx, showtimeID)
	if errors.Is(err, repository.ErrShowtimeNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, model.MergeGrid(seats))
}

type setSeatsReq struct {
	Seats  []model.SeatRef `json:"seats"`
	Status string          `json:"status"`
}

// SetSeats handles POST /api/showtimes/:id/seats. The write is
// all-or-nothing: every named seat transitions to the requested status
// or none does. A seat that is already sold rejects the whole batch
// with 409 so the losing buyer of a race sees the conflict instead of
// silently overwriting the winner.
func (h *SeatHandler) SetSeats(c echo.Context) error {
	showtimeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || showtimeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	var req setSeatsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidSeatStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be reserved or sold"})
	}
	if len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats are required"})
	}
	for _, ref := range req.Seats {
		if !ref.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat reference: " + ref.Label()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err = h.Seats.SetStatus(ctx, showtimeID, req.Seats, req.Status)
	switch {
	case errors.Is(err, repository.ErrShowtimeNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	case errors.Is(err, repository.ErrSeatConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrSeatNotAllowed):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "updated": len(req.Seats)})
}
