package booking

import "github.com/iliyamo/room-booking/internal/model"

// Overlapping filters a room's event snapshot down to the events whose
// interval intersects the candidate.  Events are returned in the order
// they appear in the snapshot; no sort is applied.  excludeID skips one
// event by id so that re-validating an edited booking does not collide
// with its own prior version (pass 0 when creating).
//
// The snapshot is expected to contain a single room's events; the engine
// does not check RoomID because rooms are independent and the caller
// already scoped the query.
func Overlapping(candidate Interval, events []model.Event, excludeID uint64) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if excludeID != 0 && ev.ID == excludeID {
			continue
		}
		if candidate.Overlaps(Interval{Start: ev.StartsAt, End: ev.EndsAt}) {
			out = append(out, ev)
		}
	}
	return out
}

// HasOverlap reports whether any event in the snapshot intersects the
// candidate.  It short-circuits on the first hit instead of collecting
// the full conflict set.
func HasOverlap(candidate Interval, events []model.Event, excludeID uint64) bool {
	for _, ev := range events {
		if excludeID != 0 && ev.ID == excludeID {
			continue
		}
		if candidate.Overlaps(Interval{Start: ev.StartsAt, End: ev.EndsAt}) {
			return true
		}
	}
	return false
}
