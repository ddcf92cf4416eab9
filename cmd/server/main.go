package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tavolo/night-booking/internal/cache"
	"github.com/tavolo/night-booking/internal/config"
	"github.com/tavolo/night-booking/internal/database"
	"github.com/tavolo/night-booking/internal/handler"
	"github.com/tavolo/night-booking/internal/middleware"
	"github.com/tavolo/night-booking/internal/queue"
	"github.com/tavolo/night-booking/internal/repository"
	"github.com/tavolo/night-booking/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the cache and rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	nightCache := cache.NewNightCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewFixedWindow(config.LoadRateLimitConfig(), rdb)

	nightRepo := repository.NewNightRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	reservedSeatRepo := repository.NewReservedSeatRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterNights(e, handler.NewNightHandler(nightRepo))
	router.RegisterBookings(e, handler.NewBookingHandler(nightRepo, bookingRepo, reservedSeatRepo, nightCache), limiter)

	// Background consumer appending booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
