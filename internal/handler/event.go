package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/room-booking/internal/booking"
	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/middleware"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/queue"
	"github.com/iliyamo/room-booking/internal/repository"
)

// rejectionMessages maps every engine reason to the stable,
// user-readable message surfaced in 422 responses.  The reason code
// itself is the machine-readable contract.
var rejectionMessages = map[booking.Reason]string{
	booking.ReasonInvalidInterval:     "end time must be strictly after start time",
	booking.ReasonInvalidParticipants: "participants must be a positive integer",
	booking.ReasonCapacityExceeded:    "participants exceed the room capacity",
	booking.ReasonOutsideHours:        "event falls outside the room's operating hours",
	booking.ReasonCumulativeCapacity:  "overlapping events would exceed the room capacity",
	booking.ReasonOverlapConflict:     "event time overlaps an existing booking",
}

// EventHandler implements booking creation, listing and cancellation.
// Creation runs the full admission flow: lock the room row, snapshot its
// events, ask the engine for a verdict, and persist only on admission,
// all inside one transaction so concurrent bookings for the same room
// serialize instead of racing check-then-insert.
type EventHandler struct {
	Rooms     *repository.RoomRepo
	Events    *repository.EventRepo
	Validator booking.Validator

	CacheCfg config.CacheConfig
	CacheRDB *redis.Client
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(rooms *repository.RoomRepo, events *repository.EventRepo, v booking.Validator, cacheCfg config.CacheConfig, cacheRDB *redis.Client) *EventHandler {
	if rooms == nil || events == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Rooms: rooms, Events: events, Validator: v, CacheCfg: cacheCfg, CacheRDB: cacheRDB}
}

// Create handles POST /v1/rooms/:id/events.  Responses: 201 with the
// persisted event when admitted; 422 with a reason code (and the
// conflicting events, when relevant) on rejection; 404 for an unknown
// room; 400 for malformed input.
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var body struct {
		Title        string `json:"title"`
		StartsAt     string `json:"starts_at"` // RFC3339
		EndsAt       string `json:"ends_at"`   // RFC3339
		Participants uint32 `json:"participants"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	startsAt, err := time.Parse(time.RFC3339, strings.TrimSpace(body.StartsAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid starts_at format"})
	}
	endsAt, err := time.Parse(time.RFC3339, strings.TrimSpace(body.EndsAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ends_at format"})
	}

	candidate := model.Event{
		RoomID:       roomID,
		Title:        title,
		StartsAt:     startsAt.UTC(),
		EndsAt:       endsAt.UTC(),
		Participants: body.Participants,
	}

	ctx := c.Request().Context()
	tx, err := h.Rooms.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the room row.  From here until commit no other booking for
	// this room can read its snapshot, which is what makes the verdict
	// safe to persist.
	room, err := h.Rooms.GetByIDTx(ctx, tx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	existing, err := h.Events.ListByRoomTx(ctx, tx, roomID, 0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	decision := h.Validator.Validate(*room, candidate, existing, 0)
	if !decision.Admitted {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":     rejectionMessages[decision.Reason],
			"reason":    decision.Reason,
			"conflicts": decision.Conflicts,
		})
	}

	if err := h.Events.CreateTx(ctx, tx, &candidate); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}

	middleware.InvalidateCache(ctx, h.CacheCfg, h.CacheRDB)

	// Notify after commit; a broker outage must not fail the booking.
	msg := queue.EventBookedMessage{
		EventID:      candidate.ID,
		RoomID:       room.ID,
		RoomName:     room.Name,
		Title:        candidate.Title,
		StartsAt:     candidate.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:       candidate.EndsAt.UTC().Format(time.RFC3339),
		Participants: candidate.Participants,
		BookedBy:     userID,
		BookedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := queue.PublishEventBooked(pubCtx, msg); err != nil {
			log.Printf("event-handler: publish booking message failed: %v", err)
		}
	}()

	return c.JSON(http.StatusCreated, candidate)
}

// List handles GET /v1/rooms/:id/events.  Without query parameters it
// returns the room's full schedule; with from/to (RFC3339) it returns
// only the events overlapping that window.
func (h *EventHandler) List(c echo.Context) error {
	roomID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	var events []model.Event
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from != "" || to != "" {
		start, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from format"})
		}
		end, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to format"})
		}
		if !end.After(start) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
		}
		events, err = h.Events.WindowOverlapping(ctx, roomID, start.UTC(), end.UTC())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	} else {
		events, err = h.Events.ListByRoom(ctx, roomID, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	if events == nil {
		events = []model.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// Delete handles DELETE /v1/events/:id (cancellation).  Once removed,
// the event frees its seats: it no longer counts in any overlap or
// capacity check.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete event"})
	}
	middleware.InvalidateCache(c.Request().Context(), h.CacheCfg, h.CacheRDB)
	return c.NoContent(http.StatusNoContent)
}
