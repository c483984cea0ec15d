package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlightcine/starlight-api/internal/mocks"
	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/repository"
)

func newSeatContext(method, body string, showtimeID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/showtimes/"+showtimeID+"/seats", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(showtimeID)
	return c, rec
}

func TestGetSeatsSynthesizesFullGrid(t *testing.T) {
	store := &mocks.MockSeatStore{
		GetByShowtimeFunc: func(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
			assert.Equal(t, uint64(3), showtimeID)
			return []model.Seat{{Row: "A", Number: 1, Status: model.SeatSold}}, nil
		},
	}
	h := NewSeatHandler(store)

	c, rec := newSeatContext(http.MethodGet, "", "3")
	require.NoError(t, h.GetSeats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var grid []model.Seat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	require.Len(t, grid, 120)
	assert.Equal(t, model.SeatSold, grid[0].Status)
	assert.Equal(t, model.SeatAvailable, grid[1].Status)
}

func TestGetSeatsUnknownShowtime(t *testing.T) {
	store := &mocks.MockSeatStore{
		GetByShowtimeFunc: func(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
			return nil, repository.ErrShowtimeNotFound
		},
	}
	h := NewSeatHandler(store)

	c, rec := newSeatContext(http.MethodGet, "", "999")
	require.NoError(t, h.GetSeats(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSeatsBadID(t *testing.T) {
	h := NewSeatHandler(&mocks.MockSeatStore{})

	c, rec := newSeatContext(http.MethodGet, "", "abc")
	require.NoError(t, h.GetSeats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetSeats(t *testing.T) {
	var gotRefs []model.SeatRef
	var gotStatus string
	store := &mocks.MockSeatStore{
		SetStatusFunc: func(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
			gotRefs, gotStatus = refs, status
			return nil
		},
	}
	h := NewSeatHandler(store)

	body := `{"seats":[{"row":"B","number":7},{"row":"B","number":8}],"status":"sold"}`
	c, rec := newSeatContext(http.MethodPost, body, "3")
	require.NoError(t, h.SetSeats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []model.SeatRef{{Row: "B", Number: 7}, {Row: "B", Number: 8}}, gotRefs)
	assert.Equal(t, model.SeatSold, gotStatus)
	assert.Contains(t, rec.Body.String(), `"updated":2`)
}

func TestSetSeatsConflict(t *testing.T) {
	store := &mocks.MockSeatStore{
		SetStatusFunc: func(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
			return fmt.Errorf("%w: B7", repository.ErrSeatConflict)
		},
	}
	h := NewSeatHandler(store)

	body := `{"seats":[{"row":"B","number":7}],"status":"sold"}`
	c, rec := newSeatContext(http.MethodPost, body, "3")
	require.NoError(t, h.SetSeats(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "B7")
}

func TestSetSeatsVIPRowRejected(t *testing.T) {
	store := &mocks.MockSeatStore{
		SetStatusFunc: func(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
			return fmt.Errorf("%w: A1", repository.ErrSeatNotAllowed)
		},
	}
	h := NewSeatHandler(store)

	body := `{"seats":[{"row":"A","number":1}],"status":"sold"}`
	c, rec := newSeatContext(http.MethodPost, body, "3")
	require.NoError(t, h.SetSeats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetSeatsValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad status", `{"seats":[{"row":"A","number":1}],"status":"available"}`, "status must be reserved or sold"},
		{"no seats", `{"seats":[],"status":"sold"}`, "seats are required"},
		{"out of range number", `{"seats":[{"row":"A","number":13}],"status":"sold"}`, "invalid seat reference: A13"},
		{"unknown row", `{"seats":[{"row":"Z","number":1}],"status":"sold"}`, "invalid seat reference: Z1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSeatHandler(&mocks.MockSeatStore{
				SetStatusFunc: func(ctx context.Context, showtimeID uint64, refs []model.SeatRef, status string) error {
					t.Fatal("store must not be called for invalid input")
					return nil
				},
			})
			c, rec := newSeatContext(http.MethodPost, tt.body, "3")
			require.NoError(t, h.SetSeats(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
