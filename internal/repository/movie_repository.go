package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// MovieRepo provides CRUD operations for the movies catalog.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo returns a new MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// List returns all movies ordered by id.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, title, duration, rating, genre, image, COALESCE(description, ''), format
	           FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Duration, &m.Rating, &m.Genre,
			&m.Image, &m.Description, &m.Format); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Create inserts a movie and populates its generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, duration, rating, genre, image, description, format)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, m.Title, m.Duration, m.Rating, m.Genre,
		m.Image, m.Description, m.Format)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// Update rewrites a movie in place. It returns sql.ErrNoRows when the
// id does not exist.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies
	           SET title = ?, duration = ?, rating = ?, genre = ?, image = ?, description = ?, format = ?
	           WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, m.Title, m.Duration, m.Rating, m.Genre,
		m.Image, m.Description, m.Format, m.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a movie. It returns sql.ErrNoRows when the id does not
// exist and ErrConflict when showtimes still reference it.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrConflict
		}
		return err
	}
	return requireRow(result)
}
