package booking

import "github.com/iliyamo/room-booking/internal/model"

// TotalParticipants sums the participants of every event in the
// overlapping set plus the candidate's own.  This models concurrent seat
// occupancy: every instant covered by the candidate and two or more
// overlapping events hosts at most this many attendees.  The caller must
// pass only time-overlapping events; non-overlapping events never count
// against each other.
func TotalParticipants(candidate model.Event, overlapping []model.Event) uint64 {
	total := uint64(candidate.Participants)
	for _, ev := range overlapping {
		total += uint64(ev.Participants)
	}
	return total
}

// ExceedsCapacity reports whether admitting the candidate alongside the
// overlapping events would put more attendees in the room than it holds.
// Totals are widened to uint64 so many large events cannot wrap around
// the comparison.
func ExceedsCapacity(room model.Room, candidate model.Event, overlapping []model.Event) bool {
	return TotalParticipants(candidate, overlapping) > uint64(room.Capacity)
}
