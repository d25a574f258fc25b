// Package booking contains the validation and conflict-resolution engine
// for room bookings.  The engine is storage-agnostic: it operates on plain
// model structs handed in by the caller and returns decisions as data.
// Persistence, transport and authentication live in the surrounding
// packages; nothing in here touches a database or the network.
package booking

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when an interval's end is not strictly
// after its start.  Zero-duration and negative-duration intervals are
// never valid bookings.
var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time range [Start, End).  The start instant is
// part of the range, the end instant is not, so an event ending at 12:00
// and one starting at 12:00 do not conflict.
type Interval struct {
	Start time.Time // inclusive lower bound
	End   time.Time // exclusive upper bound
}

// NewInterval builds an Interval and enforces Start < End.  Callers that
// construct Interval literals directly (e.g. from trusted DB rows) bypass
// this check; the validator re-checks the candidate regardless.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Valid reports whether the interval has a strictly positive duration.
func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Duration returns End - Start.  Positive for any valid interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether the two half-open ranges share any instant.
// Both comparisons are strict, so touching boundaries (iv.End == other.Start
// or other.End == iv.Start) are not overlaps and back-to-back bookings
// remain legal.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Within reports whether iv lies entirely inside outer, boundaries
// inclusive.  An event may start exactly at opening time and end exactly
// at closing time.
func (iv Interval) Within(outer Interval) bool {
	return !iv.Start.Before(outer.Start) && !iv.End.After(outer.End)
}
