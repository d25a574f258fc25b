package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/room-booking/internal/booking"
	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/middleware"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/repository"
)

// RoomHandler implements administrative room CRUD.  Room hours are
// validated with the engine's parser on write so the validator never
// meets an unparseable policy in practice.
type RoomHandler struct {
	Rooms *repository.RoomRepo

	// Cache invalidation on mutations; CacheRDB may be nil.
	CacheCfg config.CacheConfig
	CacheRDB *redis.Client
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *repository.RoomRepo, cacheCfg config.CacheConfig, cacheRDB *redis.Client) *RoomHandler {
	if rooms == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms, CacheCfg: cacheCfg, CacheRDB: cacheRDB}
}

type roomBody struct {
	Name      string `json:"name"`
	Capacity  uint32 `json:"capacity"`
	OpenTime  string `json:"open_time"`  // "HH:MM:SS"
	CloseTime string `json:"close_time"` // "HH:MM:SS"; <= open_time means overnight
}

func (b *roomBody) validate() string {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return "name is required"
	}
	if b.Capacity == 0 {
		return "capacity must be a positive integer"
	}
	if _, err := booking.ParseHours(b.OpenTime, b.CloseTime); err != nil {
		return "open_time and close_time must be HH:MM:SS"
	}
	return ""
}

// Create handles POST /v1/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var body roomBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	rm := &model.Room{Name: body.Name, Capacity: body.Capacity, OpenTime: body.OpenTime, CloseTime: body.CloseTime}
	if err := h.Rooms.Create(c.Request().Context(), rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.CacheRDB)
	return c.JSON(http.StatusCreated, rm)
}

// List handles GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	rm, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rm)
}

// Update handles PATCH /v1/rooms/:id.  Changing capacity or hours does
// not re-validate existing bookings; the new policy applies to future
// admission decisions only.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	current, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// Start from the stored row so omitted fields keep their values.
	body := roomBody{
		Name:      current.Name,
		Capacity:  current.Capacity,
		OpenTime:  current.OpenTime,
		CloseTime: current.CloseTime,
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	current.Name = body.Name
	current.Capacity = body.Capacity
	current.OpenTime = body.OpenTime
	current.CloseTime = body.CloseTime
	if err := h.Rooms.Update(c.Request().Context(), current); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update room"})
	}
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.CacheRDB)
	return c.JSON(http.StatusOK, current)
}

// Delete handles DELETE /v1/rooms/:id.  A room with booked events
// cannot be removed (409); cancel the events first.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room still has booked events"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete room"})
		}
	}
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.CacheRDB)
	return c.NoContent(http.StatusNoContent)
}
