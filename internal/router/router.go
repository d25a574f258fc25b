// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the register/login endpoints under /v1/auth.
// These are unauthenticated by definition but still rate limited.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterBooking registers the room and event endpoints under /v1.
// Every route requires a valid access token; GET responses are cached
// and all routes share the token-bucket rate limiter.
func RegisterBooking(e *echo.Echo, rooms *handler.RoomHandler, events *handler.EventHandler, jwtSecret string, rlCfg config.RateLimitConfig, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))
	g.Use(middleware.NewRedisCache(cacheCfg, rdb))

	g.POST("/rooms", rooms.Create)
	g.GET("/rooms", rooms.List)
	g.GET("/rooms/:id", rooms.Get)
	g.PATCH("/rooms/:id", rooms.Update)
	g.DELETE("/rooms/:id", rooms.Delete)

	g.POST("/rooms/:id/events", events.Create)
	g.GET("/rooms/:id/events", events.List)
	g.DELETE("/events/:id", events.Delete)
}
