package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/repository"
)

// ShowtimeHandler serves showtime listings for the storefront.
type ShowtimeHandler struct {
	Showtimes *repository.ShowtimeRepo
}

// NewShowtimeHandler returns a ShowtimeHandler backed by the showtime
// repository.
func NewShowtimeHandler(showtimes *repository.ShowtimeRepo) *ShowtimeHandler {
	return &ShowtimeHandler{Showtimes: showtimes}
}

// ListShowtimes handles GET /api/showtimes?movie_id= and returns the
// showtimes of one movie.
func (h *ShowtimeHandler) ListShowtimes(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.QueryParam("movie_id"), 10, 64)
	if err != nil || movieID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	showtimes, err := h.Showtimes.ListByMovie(ctx, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, showtimes)
}

// GetShowtime handles GET /api/showtimes/:id.
func (h *ShowtimeHandler) GetShowtime(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Showtimes.GetByID(ctx, id)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, st)
}
