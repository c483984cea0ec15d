// Package repository contains the MySQL data access layer. This file
// defines sentinel errors shared across repositories so that handlers
// can translate failure scenarios into HTTP status codes without
// inspecting driver-level errors.
package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrShowtimeNotFound is returned when a seat or showtime operation
// references a showtime id that does not exist. Handlers should
// translate this into an HTTP 404 response.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrSeatConflict is returned when a batch seat write targets a seat
// that is already sold. The whole batch is rejected; nothing is
// written. Handlers should translate this into an HTTP 409 response.
var ErrSeatConflict = errors.New("seat already sold")

// ErrSeatNotAllowed is returned when a seat write targets a row that the
// room type does not permit (VIP rooms only sell the VIP rows).
var ErrSeatNotAllowed = errors.New("seat not allowed in this room")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a category that still has
// products. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// requireRow converts a zero-rows-affected result into sql.ErrNoRows so
// update and delete paths can report missing ids uniformly.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// isFKViolation detects MySQL error 1451 (row referenced by a foreign
// key) without depending on driver error types.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1451")
}
