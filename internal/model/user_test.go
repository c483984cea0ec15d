package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRole(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"administrador", RoleAdmin},
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"  ADMINISTRADOR  ", RoleAdmin},
		{"cliente", RoleCustomer},
		{"customer", RoleCustomer},
		{"", RoleCustomer},
		{"manager", RoleCustomer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalRole(tt.raw), "raw %q", tt.raw)
	}
}
