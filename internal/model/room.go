package model

import "time"

// Room represents a bookable physical room as stored in the `rooms`
// table.  A room can host many events.  The open/close times are TIME
// columns kept as "HH:MM:SS" strings; the booking engine parses them
// into an operating-hours policy.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique room name.
//  Capacity  – maximum number of concurrent attendees (always > 0).
//  OpenTime  – daily opening time ("HH:MM:SS").
//  CloseTime – daily closing time ("HH:MM:SS"); when earlier than
//              OpenTime the room operates overnight across midnight,
//              and when equal the room never closes.
//  CreatedAt – timestamp when the room was created.
//  UpdatedAt – timestamp of last update.
type Room struct {
	ID        uint64    // rooms.id
	Name      string    // rooms.name
	Capacity  uint32    // rooms.capacity
	OpenTime  string    // rooms.open_time
	CloseTime string    // rooms.close_time
	CreatedAt time.Time // rooms.created_at
	UpdatedAt time.Time // rooms.updated_at
}
