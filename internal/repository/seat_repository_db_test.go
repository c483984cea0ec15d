package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/starlightcine/starlight-api/internal/model"
	"github.com/starlightcine/starlight-api/internal/repository"
)

const (
	dbName      = "starlight_test"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "mysql:8.4"
)

// SeatRepoSuite exercises the seat and checkout repositories against a
// real MySQL instance, since their semantics live in the SQL itself:
// lazy row materialization, idempotent upserts, the sold-seat conflict
// and the single checkout transaction.
type SeatRepoSuite struct {
	suite.Suite
	container *tcmysql.MySQLContainer
	db        *sql.DB
	seats     *repository.SeatRepo
	orders    *repository.OrderRepo
	checkout  *repository.CheckoutRepo

	standardRoomID uint64
	vipRoomID      uint64
	movieID        uint64
}

func TestSeatRepoSuite(t *testing.T) {
	suite.Run(t, new(SeatRepoSuite))
}

func (s *SeatRepoSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, dbImageName,
		tcmysql.WithDatabase(dbName),
		tcmysql.WithUsername(dbUser),
		tcmysql.WithPassword(dbPassword),
	)
	if err != nil {
		s.T().Skipf("cannot start mysql container: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(ctx, "parseTime=true", "multiStatements=true")
	s.Require().NoError(err)

	db, err := sql.Open("mysql", dsn)
	s.Require().NoError(err)
	s.Require().NoError(db.PingContext(ctx))
	s.db = db

	schema, err := os.ReadFile("../../schema.sql")
	s.Require().NoError(err)
	_, err = db.ExecContext(ctx, string(schema))
	s.Require().NoError(err)

	s.standardRoomID = s.insertID(`INSERT INTO rooms (name, capacity, type) VALUES ('Sala 1', 120, 'standard')`)
	s.vipRoomID = s.insertID(`INSERT INTO rooms (name, capacity, type) VALUES ('Sala VIP', 24, 'vip')`)
	s.movieID = s.insertID(`INSERT INTO movies (title, duration) VALUES ('Dune', 155)`)

	s.seats = repository.NewSeatRepo(db)
	s.orders = repository.NewOrderRepo(db)
	s.checkout = repository.NewCheckoutRepo(db, s.orders, s.seats)
}

func (s *SeatRepoSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		if err := testcontainers.TerminateContainer(s.container); err != nil {
			s.T().Logf("failed to terminate container: %v", err)
		}
	}
}

func (s *SeatRepoSuite) insertID(query string, args ...interface{}) uint64 {
	result, err := s.db.Exec(query, args...)
	s.Require().NoError(err)
	id, err := result.LastInsertId()
	s.Require().NoError(err)
	return uint64(id)
}

// newShowtime creates a fresh showtime so each test starts from an
// unmaterialized grid.
func (s *SeatRepoSuite) newShowtime(roomID uint64) uint64 {
	return s.insertID(
		`INSERT INTO showtimes (movie_id, room_id, show_date, show_time, price)
		 VALUES (?, ?, '2026-09-01', '18:00:00', 85.00)`,
		s.movieID, roomID)
}

func (s *SeatRepoSuite) TestUnknownShowtime() {
	ctx := context.Background()

	_, err := s.seats.GetByShowtime(ctx, 999999)
	s.ErrorIs(err, repository.ErrShowtimeNotFound)

	err = s.seats.SetStatus(ctx, 999999, []model.SeatRef{{Row: "A", Number: 1}}, model.SeatReserved)
	s.ErrorIs(err, repository.ErrShowtimeNotFound)
}

func (s *SeatRepoSuite) TestGridMaterializesLazily() {
	ctx := context.Background()
	showtimeID := s.newShowtime(s.standardRoomID)

	seats, err := s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)
	s.Empty(seats, "no rows may exist before the first write")

	refs := []model.SeatRef{{Row: "A", Number: 1}, {Row: "A", Number: 2}}
	s.Require().NoError(s.seats.SetStatus(ctx, showtimeID, refs, model.SeatReserved))

	seats, err = s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)
	s.Equal([]model.Seat{
		{Row: "A", Number: 1, Status: model.SeatReserved},
		{Row: "A", Number: 2, Status: model.SeatReserved},
	}, seats)
}

func (s *SeatRepoSuite) TestSetStatusIdempotent() {
	ctx := context.Background()
	showtimeID := s.newShowtime(s.standardRoomID)
	refs := []model.SeatRef{{Row: "B", Number: 3}, {Row: "B", Number: 4}}

	s.Require().NoError(s.seats.SetStatus(ctx, showtimeID, refs, model.SeatReserved))
	once, err := s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)

	s.Require().NoError(s.seats.SetStatus(ctx, showtimeID, refs, model.SeatReserved))
	twice, err := s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)

	s.Equal(once, twice, "re-applying the same write must leave the grid identical")
}

func (s *SeatRepoSuite) TestSoldSeatConflictsAndRollsBack() {
	ctx := context.Background()
	showtimeID := s.newShowtime(s.standardRoomID)

	sold := []model.SeatRef{{Row: "C", Number: 1}}
	s.Require().NoError(s.seats.SetStatus(ctx, showtimeID, sold, model.SeatSold))

	// A sold seat rejects any further transition.
	err := s.seats.SetStatus(ctx, showtimeID, sold, model.SeatReserved)
	s.ErrorIs(err, repository.ErrSeatConflict)

	// The conflict fails the whole batch: C2 must not materialize.
	err = s.seats.SetStatus(ctx, showtimeID,
		[]model.SeatRef{{Row: "C", Number: 1}, {Row: "C", Number: 2}}, model.SeatSold)
	s.ErrorIs(err, repository.ErrSeatConflict)

	seats, err := s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)
	s.Equal([]model.Seat{{Row: "C", Number: 1, Status: model.SeatSold}}, seats)
}

func (s *SeatRepoSuite) TestVIPRoomRestrictsRows() {
	ctx := context.Background()
	showtimeID := s.newShowtime(s.vipRoomID)

	err := s.seats.SetStatus(ctx, showtimeID, []model.SeatRef{{Row: "A", Number: 1}}, model.SeatSold)
	s.ErrorIs(err, repository.ErrSeatNotAllowed)

	s.Require().NoError(s.seats.SetStatus(ctx, showtimeID,
		[]model.SeatRef{{Row: "I", Number: 1}, {Row: "J", Number: 12}}, model.SeatSold))
}

func (s *SeatRepoSuite) TestCheckoutCommitAtomic() {
	ctx := context.Background()
	showtimeID := s.newShowtime(s.standardRoomID)

	order := func(email, row string, number int) *model.Order {
		return &model.Order{
			CustomerName:  "Ana Torres",
			CustomerEmail: email,
			Total:         decimal.RequireFromString("85.00"),
			Items: []model.OrderItem{{
				Type:       model.ItemTicket,
				ShowtimeID: &showtimeID,
				SeatRow:    &row,
				SeatNumber: &number,
				Quantity:   1,
				UnitPrice:  decimal.RequireFromString("85.00"),
				Subtotal:   decimal.RequireFromString("85.00"),
			}},
		}
	}

	first := order("first@example.com", "D", 1)
	s.Require().NoError(s.checkout.Commit(ctx, first))
	s.NotZero(first.ID)
	s.False(first.CreatedAt.IsZero())

	seats, err := s.seats.GetByShowtime(ctx, showtimeID)
	s.Require().NoError(err)
	s.Equal([]model.Seat{{Row: "D", Number: 1, Status: model.SeatSold}}, seats)

	orders, err := s.orders.ListByEmail(ctx, "first@example.com")
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Require().Len(orders[0].Items, 1)
	s.True(orders[0].Total.Equal(decimal.RequireFromString("85.00")))

	// A second order for the same seat must fail and leave no trace.
	err = s.checkout.Commit(ctx, order("second@example.com", "D", 1))
	s.ErrorIs(err, repository.ErrSeatConflict)

	orders, err = s.orders.ListByEmail(ctx, "second@example.com")
	s.Require().NoError(err)
	s.Empty(orders, "a conflicting checkout must roll back the order insert")
}
