package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/model"
)

// UserStore is the slice of the user repository the auth handler needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler serves the login endpoint. There are no sessions or
// tokens: login validates credentials and hands the client its
// canonical role, exactly like the system it replaces.
type AuthHandler struct {
	Users UserStore
}

// NewAuthHandler returns an AuthHandler backed by the given user store.
func NewAuthHandler(users UserStore) *AuthHandler { return &AuthHandler{Users: users} }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies email and password against the users table and returns
// the user's canonical role. Stored roles may use legacy spellings;
// they are folded through model.CanonicalRole before leaving the API.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if u.Password != req.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	role := model.CanonicalRole(u.Role)
	return c.JSON(http.StatusOK, echo.Map{
		"ok":    true,
		"email": u.Email,
		"role":  role,
		"user": echo.Map{
			"id":    u.ID,
			"email": u.Email,
			"role":  role,
		},
	})
}
