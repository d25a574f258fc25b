package model

import "time"

// Event represents a booked event occupying a room for a half-open time
// range [StartsAt, EndsAt).  Events are never edited in place: a change
// is modeled as cancel-and-recreate, and a cancelled (deleted) event no
// longer participates in overlap or capacity checks.
//
// Fields:
//  ID           – primary key identifier.
//  RoomID       – room hosting the event (rooms.id foreign key).
//  Title        – non-empty event title.
//  StartsAt     – when the event begins (UTC).
//  EndsAt       – when the event ends (UTC, strictly after StartsAt).
//  Participants – number of attendees (always > 0).
//  CreatedAt    – timestamp when the booking was persisted.
//  UpdatedAt    – timestamp of last update.
type Event struct {
	ID           uint64    // events.id
	RoomID       uint64    // events.room_id
	Title        string    // events.title
	StartsAt     time.Time // events.starts_at
	EndsAt       time.Time // events.ends_at
	Participants uint32    // events.participants
	CreatedAt    time.Time // events.created_at
	UpdatedAt    time.Time // events.updated_at
}
