package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// ShowtimeRepo provides read access to the showtimes table. Showtimes
// are immutable once created; the API only lists and resolves them.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo returns a new ShowtimeRepo bound to the given database.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{db: db} }

const showtimeColumns = `id, movie_id, room_id,
	DATE_FORMAT(show_date, '%Y-%m-%d'), TIME_FORMAT(show_time, '%H:%i:%s'), price`

// ListByMovie returns all showtimes of a movie ordered by date and time.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + `
	           FROM showtimes WHERE movie_id = ?
	           ORDER BY show_date, show_time`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	showtimes := make([]model.Showtime, 0)
	for rows.Next() {
		var st model.Showtime
		if err := rows.Scan(&st.ID, &st.MovieID, &st.RoomID, &st.ShowDate, &st.ShowTime, &st.Price); err != nil {
			return nil, err
		}
		showtimes = append(showtimes, st)
	}
	return showtimes, rows.Err()
}

// GetByID loads one showtime. It returns sql.ErrNoRows for unknown ids.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id uint64) (model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = ? LIMIT 1`
	var st model.Showtime
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&st.ID, &st.MovieID, &st.RoomID, &st.ShowDate, &st.ShowTime, &st.Price)
	return st, err
}
