// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/handler"
)

// RegisterRoutes registers routes that need no handler state. Currently
// that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/api/login", a.Login)
}

// RegisterCatalog registers the movie, room, showtime, product and
// category endpoints. The cache middleware wraps the public GETs; admin
// writes always go to the database.
func RegisterCatalog(
	e *echo.Echo,
	m *handler.MovieHandler,
	r *handler.RoomHandler,
	st *handler.ShowtimeHandler,
	p *handler.ProductHandler,
	cat *handler.CategoryHandler,
	up *handler.UploadHandler,
	cache echo.MiddlewareFunc,
) {
	e.GET("/api/movies", m.ListMovies, cache)
	e.POST("/api/movies", m.CreateMovie)
	e.PUT("/api/movies/:id", m.UpdateMovie)
	e.DELETE("/api/movies/:id", m.DeleteMovie)
	e.POST("/api/movies/image", up.UploadMovieImage)

	e.GET("/api/rooms", r.ListRooms, cache)
	e.GET("/api/rooms/:id", r.GetRoom, cache)

	e.GET("/api/showtimes", st.ListShowtimes, cache)
	e.GET("/api/showtimes/:id", st.GetShowtime, cache)

	e.GET("/api/products", p.ListProducts, cache)
	e.POST("/api/products", p.CreateProduct)
	e.PUT("/api/products/:id", p.UpdateProduct)
	e.DELETE("/api/products/:id", p.DeleteProduct)
	e.POST("/api/products/image", up.UploadProductImage)

	e.GET("/api/categories", cat.ListCategories, cache)
	e.POST("/api/categories", cat.CreateCategory)
	e.PUT("/api/categories/:id", cat.UpdateCategory)
	e.DELETE("/api/categories/:id", cat.DeleteCategory)
}

// RegisterSeats registers the seat grid read and the batch status
// write. Seat state is never cached: the grid must always reflect the
// latest committed writes.
func RegisterSeats(e *echo.Echo, s *handler.SeatHandler) {
	e.GET("/api/showtimes/:id/seats", s.GetSeats)
	e.POST("/api/showtimes/:id/seats", s.SetSeats)
}

// RegisterOrders registers checkout and the order/ticket lookups.
func RegisterOrders(e *echo.Echo, o *handler.OrderHandler) {
	e.POST("/api/orders", o.CreateOrder)
	e.GET("/api/orders", o.ListOrders)
	e.GET("/api/tickets", o.ListTickets)
}

// RegisterSales registers the receipt lookup used by the ticket QR.
func RegisterSales(e *echo.Echo, s *handler.SaleHandler) {
	e.GET("/api/sales/:folio", s.GetSale)
}
