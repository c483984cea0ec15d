package repository

import (
	"context"
	"database/sql"

	"github.com/starlightcine/starlight-api/internal/model"
)

// RoomRepo provides read access to the rooms table. Rooms are seeded
// with the schema and not managed through the API.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// List returns all rooms ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, capacity, type FROM rooms ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var ro model.Room
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Capacity, &ro.Type); err != nil {
			return nil, err
		}
		rooms = append(rooms, ro)
	}
	return rooms, rows.Err()
}

// GetByID loads one room. It returns sql.ErrNoRows for unknown ids.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	var ro model.Room
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, capacity, type FROM rooms WHERE id = ? LIMIT 1`, id).
		Scan(&ro.ID, &ro.Name, &ro.Capacity, &ro.Type)
	return ro, err
}
