package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/repository"
	appvalidator "github.com/starlightcine/starlight-api/internal/validator"
)

// MovieHandler serves the movie catalog for both the storefront and the
// admin panel.
type MovieHandler struct {
	Movies   *repository.MovieRepo
	Validate *validator.Validate
}

// NewMovieHandler returns a MovieHandler backed by the movie repository.
func NewMovieHandler(movies *repository.MovieRepo, v *validator.Validate) *MovieHandler {
	return &MovieHandler{Movies: movies, Validate: v}
}

type movieReq struct {
	Title       string `json:"title" validate:"required"`
	Duration    int    `json:"duration" validate:"gt=0"`
	Rating      string `json:"rating"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Format      string `json:"format" validate:"omitempty,oneof=2D 3D"`
}

func (r movieReq) toModel() model.Movie {
	m := model.Movie{
		Title:       r.Title,
		Duration:    r.Duration,
		Rating:      r.Rating,
		Genre:       r.Genre,
		Image:       r.Image,
		Description: r.Description,
		Format:      r.Format,
	}
	if m.Format == "" {
		m.Format = "2D"
	}
	return m
}

// ListMovies handles GET /api/movies.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, movies)
}

// CreateMovie handles POST /api/movies.
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": appvalidator.Message(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := req.toModel()
	if err := h.Movies.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /api/movies/:id.
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": appvalidator.Message(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := req.toModel()
	m.ID = id
	if err := h.Movies.Update(ctx, &m); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMovie handles DELETE /api/movies/:id.
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err = h.Movies.Delete(ctx, id)
	switch {
	case err == sql.ErrNoRows:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "movie has showtimes"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.NoContent(http.StatusNoContent)
}
