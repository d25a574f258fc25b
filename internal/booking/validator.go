package booking

import "github.com/iliyamo/room-booking/internal/model"

// Reason categorizes why a proposed booking was rejected.  Reasons are
// stable string codes; the HTTP layer maps each to a user-readable
// message.  A rejection is an expected outcome, not an error: only
// infrastructure faults (unknown room, storage failure) surface as Go
// errors, and those happen outside this package.
type Reason string

const (
	// ReasonInvalidInterval indicates the end is not strictly after the start.
	ReasonInvalidInterval Reason = "INVALID_INTERVAL"

	// ReasonInvalidParticipants indicates a non-positive participant count.
	ReasonInvalidParticipants Reason = "INVALID_PARTICIPANTS"

	// ReasonCapacityExceeded indicates the event alone exceeds room capacity.
	ReasonCapacityExceeded Reason = "CAPACITY_EXCEEDED"

	// ReasonOutsideHours indicates the interval is not contained in the
	// room's resolved operating window.
	ReasonOutsideHours Reason = "OUTSIDE_OPERATING_HOURS"

	// ReasonCumulativeCapacity indicates the candidate plus time-overlapping
	// events would exceed capacity at some instant.
	ReasonCumulativeCapacity Reason = "CUMULATIVE_CAPACITY_EXCEEDED"

	// ReasonOverlapConflict indicates another event overlaps the candidate.
	// Only produced when the validator runs with StrictOverlap enabled;
	// the default policy admits overlap as long as capacity holds.
	ReasonOverlapConflict Reason = "TIME_OVERLAP_CONFLICT"
)

// Decision is the admission verdict for a proposed booking.  Conflicts
// carries the overlapping events when the rejection was caused by them,
// so callers can echo the conflicting bookings back to the client.
type Decision struct {
	Admitted  bool
	Reason    Reason        // empty when Admitted
	Conflicts []model.Event // overlapping events, for overlap/capacity rejections
}

func admit() Decision          { return Decision{Admitted: true} }
func reject(r Reason) Decision { return Decision{Reason: r} }

// Validator decides whether proposed bookings may be admitted.  It holds
// no state across calls: Validate is a pure function of its arguments,
// so the same snapshot always yields the same decision.
//
// StrictOverlap switches on the policy that forbids ANY time overlap in
// a room regardless of capacity.  The default (false) admits overlapping
// events while their cumulative participants fit in the room.
type Validator struct {
	StrictOverlap bool
}

// Validate runs the admission checks for candidate against a consistent
// snapshot of the room's existing events.  Checks run in a fixed order
// and the first failure wins:
//
//  1. structural: positive duration, positive participants
//  2. the event alone must fit the room
//  3. the event must fall inside the room's operating window
//  4. overlap discovery (strict policy rejects here on any hit)
//  5. cumulative capacity across the overlapping set
//
// When re-validating an edit, pass the event's own id in excludeID so it
// is not counted as its own conflict; pass 0 when creating.
//
// The caller owns snapshot consistency: two concurrent requests must not
// both validate against a snapshot that omits the other's write (the
// repository layer serializes this with a per-room row lock).
func (v Validator) Validate(room model.Room, candidate model.Event, existing []model.Event, excludeID uint64) Decision {
	iv := Interval{Start: candidate.StartsAt, End: candidate.EndsAt}
	if !iv.Valid() {
		return reject(ReasonInvalidInterval)
	}
	if candidate.Participants == 0 {
		return reject(ReasonInvalidParticipants)
	}
	if candidate.Participants > room.Capacity {
		return reject(ReasonCapacityExceeded)
	}

	hours, err := ParseHours(room.OpenTime, room.CloseTime)
	if err != nil {
		// A room with unparseable hours cannot admit anything; the room
		// repository validates hours on write, so this is a safety net.
		return reject(ReasonOutsideHours)
	}
	if !hours.Allows(iv) {
		return reject(ReasonOutsideHours)
	}

	conflicts := Overlapping(iv, existing, excludeID)
	if v.StrictOverlap && len(conflicts) > 0 {
		d := reject(ReasonOverlapConflict)
		d.Conflicts = conflicts
		return d
	}
	if ExceedsCapacity(room, candidate, conflicts) {
		d := reject(ReasonCumulativeCapacity)
		d.Conflicts = conflicts
		return d
	}
	return admit()
}
