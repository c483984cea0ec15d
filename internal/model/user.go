package model

import (
	"strings"
	"time"
)

// Canonical role names exposed to clients. The database may still carry
// legacy Spanish spellings; CanonicalRole folds them.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User mirrors the 'users' table.
type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}

// CanonicalRole maps a stored role string to one of the two canonical
// roles. Legacy rows use "administrador"/"cliente"; newer rows already
// use the canonical names. Unknown or empty values default to customer.
func CanonicalRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "administrador", "admin":
		return RoleAdmin
	case "cliente", "customer":
		return RoleCustomer
	default:
		return RoleCustomer
	}
}
