package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/starlightcine/starlight-api/internal/config"
	"github.com/starlightcine/starlight-api/internal/database"
	"github.com/starlightcine/starlight-api/internal/handler"
	"github.com/starlightcine/starlight-api/internal/middleware"
	"github.com/starlightcine/starlight-api/internal/queue"
	"github.com/starlightcine/starlight-api/internal/repository"
	"github.com/starlightcine/starlight-api/internal/router"
	"github.com/starlightcine/starlight-api/internal/service"
	appvalidator "github.com/starlightcine/starlight-api/internal/validator"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	rooms := repository.NewRoomRepo(db)
	showtimes := repository.NewShowtimeRepo(db)
	seats := repository.NewSeatRepo(db)
	products := repository.NewProductRepo(db)
	categories := repository.NewCategoryRepo(db)
	orders := repository.NewOrderRepo(db)
	sales := repository.NewSaleRepo(db)
	ledger := repository.NewCheckoutRepo(db, orders, seats)

	publisher := queue.NewPublisher(cfg.RabbitURL)
	checkout := service.NewCheckoutService(ledger, publisher)

	// The consumer projects order events into the sales table so that
	// receipts can be looked up by folio. It reconnects on broker loss.
	go queue.StartOrderConsumer(cfg.RabbitURL, sales)

	v := appvalidator.New()

	e := echo.New()
	e.HideBanner = true

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(users))
	router.RegisterCatalog(e,
		handler.NewMovieHandler(movies, v),
		handler.NewRoomHandler(rooms),
		handler.NewShowtimeHandler(showtimes),
		handler.NewProductHandler(products, v),
		handler.NewCategoryHandler(categories),
		handler.NewUploadHandler(cfg.UploadDir, cfg.BaseURL),
		cache,
	)
	router.RegisterSeats(e, handler.NewSeatHandler(seats))
	router.RegisterOrders(e, handler.NewOrderHandler(checkout, orders, v))
	router.RegisterSales(e, handler.NewSaleHandler(sales))

	e.Static("/uploads", cfg.UploadDir)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
