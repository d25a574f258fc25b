// Package repository: data access for the events table.  Events are the
// persisted form of admitted bookings.  The repository never decides
// admission; it supplies snapshots to the booking engine and persists
// what the engine admitted.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/room-booking/internal/model"
)

// timeFormat is the DB timestamp layout used when binding time.Time
// values into DATETIME parameters ("YYYY-MM-DD HH:MM:SS", UTC).
const timeFormat = "2006-01-02 15:04:05"

// EventRepo manages persistence for events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, room_id, title, starts_at, ends_at, participants, created_at, updated_at`

func scanEvent(row interface{ Scan(dest ...any) error }, ev *model.Event) error {
	return row.Scan(&ev.ID, &ev.RoomID, &ev.Title, &ev.StartsAt, &ev.EndsAt, &ev.Participants, &ev.CreatedAt, &ev.UpdatedAt)
}

// CreateTx inserts a new event using the provided transaction.  The
// booking flow calls this while still holding the room row lock so the
// insert and the validation snapshot commit atomically.  On success the
// generated ID and DB-default timestamps are populated on the event.
func (r *EventRepo) CreateTx(ctx context.Context, tx *sql.Tx, ev *model.Event) error {
	const q = `INSERT INTO events (room_id, title, starts_at, ends_at, participants) VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		ev.RoomID, ev.Title,
		ev.StartsAt.UTC().Format(timeFormat),
		ev.EndsAt.UTC().Format(timeFormat),
		ev.Participants,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = uint64(id)
	const sel = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	return scanEvent(tx.QueryRowContext(ctx, sel, ev.ID), ev)
}

// GetByID retrieves an event by its ID.  It returns ErrEventNotFound if
// there is no matching row.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	var ev model.Event
	if err := scanEvent(r.db.QueryRowContext(ctx, q, id), &ev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

// ListByRoom returns all events booked in a room in insertion order
// (ascending id).  excludeID skips one event (0 = none), used when
// re-validating a booking against everything but its own stored row.
// When no events exist it returns an empty slice and nil error.
func (r *EventRepo) ListByRoom(ctx context.Context, roomID, excludeID uint64) ([]model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE room_id = ? AND id != ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, roomID, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListByRoomTx is ListByRoom inside the caller's transaction.  Called
// after GetByIDTx has locked the room row, the result is the consistent
// snapshot the booking engine validates against.
func (r *EventRepo) ListByRoomTx(ctx context.Context, tx *sql.Tx, roomID, excludeID uint64) ([]model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE room_id = ? AND id != ? ORDER BY id ASC`
	rows, err := tx.QueryContext(ctx, q, roomID, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]model.Event, error) {
	var result []model.Event
	for rows.Next() {
		var ev model.Event
		if err := scanEvent(rows, &ev); err != nil {
			return nil, err
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WindowOverlapping returns events in a room whose [starts_at, ends_at)
// intersects the given window, using the half-open predicate (existing
// starts before the window ends AND ends after it starts).  Used by the
// listing API to show what occupies a time range; the booking decision
// itself filters in memory over the locked snapshot instead.
func (r *EventRepo) WindowOverlapping(ctx context.Context, roomID uint64, start, end time.Time) ([]model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events
               WHERE room_id = ? AND starts_at < ? AND ends_at > ?
               ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, roomID,
		end.UTC().Format(timeFormat), start.UTC().Format(timeFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// Delete cancels a booking by removing its row.  A cancelled event no
// longer participates in overlap or capacity checks.  Returns
// ErrEventNotFound when the row does not exist.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}
