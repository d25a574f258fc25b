// Package repository: data access for the rooms table.  A Room holds the
// capacity and operating-hours policy the booking engine validates
// against; the repository only stores and retrieves it.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/room-booking/internal/model"
)

// RoomRepo manages persistence for rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories, which the booking flow
// needs to lock a room and insert an event atomically.
func (r *RoomRepo) DB() *sql.DB {
	return r.db
}

// TIME columns are formatted to "HH:MM:SS" strings; DATETIME columns
// scan into time.Time thanks to parseTime=true on the DSN.
const roomColumns = `id, name, capacity, TIME_FORMAT(open_time, '%H:%i:%s'), TIME_FORMAT(close_time, '%H:%i:%s'), created_at, updated_at`

func scanRoom(row interface{ Scan(dest ...any) error }, rm *model.Room) error {
	return row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.OpenTime, &rm.CloseTime, &rm.CreatedAt, &rm.UpdatedAt)
}

// Create inserts a new room and assigns the generated ID back to the
// struct.  Name, capacity and both times must be set by the caller; the
// handler validates them before reaching this point.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO rooms (name, capacity, open_time, close_time) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rm.Name, rm.Capacity, rm.OpenTime, rm.CloseTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	// Re-read the row to pick up DB-default timestamps.
	const sel = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	return scanRoom(r.db.QueryRowContext(ctx, sel, rm.ID), rm)
}

// GetByID retrieves a room by its ID.  It returns ErrRoomNotFound if
// there is no matching row.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	var rm model.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, q, id), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// GetByIDTx retrieves a room inside the caller's transaction and takes
// an exclusive row lock (SELECT ... FOR UPDATE).  The booking flow uses
// this lock to serialize validate-then-insert per room: two concurrent
// bookings for the same room queue on the row, so neither validates
// against a snapshot missing the other's write.  Bookings in other rooms
// are unaffected.
func (r *RoomRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ? FOR UPDATE`
	var rm model.Room
	if err := scanRoom(tx.QueryRowContext(ctx, q, id), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// List returns all rooms ordered by ID.  When no rooms exist it returns
// an empty slice and nil error.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Room
	for rows.Next() {
		var rm model.Room
		if err := scanRoom(rows, &rm); err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update rewrites a room's name, capacity and hours, then re-reads the
// row so the caller sees fresh timestamps.  It returns ErrRoomNotFound
// when the row does not exist.  Administrative edits do not re-validate
// existing events; the engine only reads room state.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	const q = `UPDATE rooms SET name = ?, capacity = ?, open_time = ?, close_time = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, rm.Name, rm.Capacity, rm.OpenTime, rm.CloseTime, rm.ID); err != nil {
		return err
	}
	const sel = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	if err := scanRoom(r.db.QueryRowContext(ctx, sel, rm.ID), rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

// Delete removes a room.  It returns ErrConflict when events still
// reference the room and ErrRoomNotFound when the row does not exist.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE room_id = ?`, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
