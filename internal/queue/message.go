// Package queue defines message payloads exchanged over the message
// broker, plus the publisher and background consumer for them.
package queue

// EventBookedMessage is published when a booking passes validation and
// commits.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type EventBookedMessage struct {
	EventID      uint64 `json:"event_id"`
	RoomID       uint64 `json:"room_id"`
	RoomName     string `json:"room_name"`
	Title        string `json:"title"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	Participants uint32 `json:"participants"`
	BookedBy     uint64 `json:"booked_by"`
	BookedAt     string `json:"booked_at"`
}
