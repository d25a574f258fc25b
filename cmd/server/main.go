package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/booking"
	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/database"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/queue"
	"github.com/iliyamo/room-booking/internal/repository"
	"github.com/iliyamo/room-booking/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional; with a nil client caching and rate limiting
	// become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	rooms := repository.NewRoomRepo(db)
	events := repository.NewEventRepo(db)
	users := repository.NewUserRepo(db)

	validator := booking.Validator{StrictOverlap: cfg.StrictOverlap}

	authH := handler.NewAuthHandler(users, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
	roomH := handler.NewRoomHandler(rooms, cacheCfg, rdb)
	eventH := handler.NewEventHandler(rooms, events, validator, cacheCfg, rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, rlCfg, rdb)
	router.RegisterBooking(e, roomH, eventH, cfg.JWTSecret, rlCfg, cacheCfg, rdb)

	// Background consumer writes confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, strict_overlap=%v)", addr, cfg.Env, cfg.StrictOverlap)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
