package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/starlightcine/starlight-api/internal/model"
)

// SeatRepo provides data access to the seats table. Seat rows are
// materialized lazily: the first write for a (showtime, row, number)
// inserts the row, later writes update it in place. The unique key on
// that triple makes every write an upsert.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo returns a new SeatRepo bound to the given database.
func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{db: db} }

// GetByShowtime returns the persisted seat rows for a showtime ordered
// by row and number. It returns ErrShowtimeNotFound when the showtime
// does not exist and an empty slice when no seats have been written yet;
// callers synthesize the default grid in that case.
func (r *SeatRepo) GetByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
	if _, err := r.roomType(ctx, r.db, showtimeID); err != nil {
		return nil, err
	}
	const q = `SELECT row_label, seat_number, status
	           FROM seats
	           WHERE showtime_id = ?
	           ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.Row, &s.Number, &s.Status); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// SetStatus transitions the named seats to the given status as one
// all-or-nothing batch inside its own transaction. See SetStatusTx for
// the write semantics.
func (r *SeatRepo) SetStatus(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.SetStatusTx(ctx, tx, showtimeID, refs, status); err != nil {
		return err
	}
	return tx.Commit()
}

// SetStatusTx upserts the named seats to the given status within an
// existing transaction. Either every seat transitions or none:
//
//   - the targeted rows are locked with SELECT ... FOR UPDATE,
//   - a seat that is already sold fails the batch with ErrSeatConflict
//     (re-applying a status a seat already holds is an idempotent no-op
//     only while the seat is not sold),
//   - in a VIP room, rows outside the VIP set fail with ErrSeatNotAllowed.
//
// The caller must commit or roll back the transaction.
func (r *SeatRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, showtimeID uint64, refs []model.SeatRef, status string) error {
	if len(refs) == 0 {
		return nil
	}
	roomType, err := r.roomType(ctx, tx, showtimeID)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		if !model.RowAllowedInRoom(roomType, ref.Row) {
			return fmt.Errorf("%w: %s", ErrSeatNotAllowed, ref.Label())
		}
	}

	// Lock the targeted rows so a concurrent batch for the same seats
	// serializes behind this one instead of double-selling.
	lockQ, lockArgs := seatPredicate(showtimeID, refs)
	rows, err := tx.QueryContext(ctx,
		`SELECT row_label, seat_number, status FROM seats WHERE `+lockQ+` FOR UPDATE`, lockArgs...)
	if err != nil {
		return err
	}
	sold := make([]string, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.Row, &s.Number, &s.Status); err != nil {
			rows.Close()
			return err
		}
		if s.Status == model.SeatSold {
			sold = append(sold, model.SeatRef{Row: s.Row, Number: s.Number}.Label())
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if len(sold) > 0 {
		return fmt.Errorf("%w: %s", ErrSeatConflict, strings.Join(sold, ","))
	}

	query := `INSERT INTO seats (showtime_id, row_label, seat_number, status) VALUES `
	args := make([]interface{}, 0, len(refs)*4)
	for i, ref := range refs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, showtimeID, ref.Row, ref.Number, status)
	}
	query += ` ON DUPLICATE KEY UPDATE status = VALUES(status)`
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// seatPredicate builds the WHERE clause matching the given seat
// references for one showtime.
func seatPredicate(showtimeID uint64, refs []model.SeatRef) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, 1+len(refs)*2)
	sb.WriteString("showtime_id = ? AND (")
	args = append(args, showtimeID)
	for i, ref := range refs {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("(row_label = ? AND seat_number = ?)")
		args = append(args, ref.Row, ref.Number)
	}
	sb.WriteString(")")
	return sb.String(), args
}

// roomType loads the room type of a showtime, doubling as the existence
// check for the showtime id.
func (r *SeatRepo) roomType(ctx context.Context, q queryRower, showtimeID uint64) (string, error) {
	const sel = `SELECT ro.type
	             FROM showtimes st
	             JOIN rooms ro ON ro.id = st.room_id
	             WHERE st.id = ?`
	var roomType string
	err := q.QueryRowContext(ctx, sel, showtimeID).Scan(&roomType)
	if err == sql.ErrNoRows {
		return "", ErrShowtimeNotFound
	}
	if err != nil {
		return "", err
	}
	return roomType, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
