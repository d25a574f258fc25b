package booking

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeOfDay is returned by ParseHours for values that are not
// "HH:MM:SS" clock times.
var ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM:SS")

const day = 24 * time.Hour

// Hours is a room's operating policy: open and close as offsets from
// midnight.  The values come from the rooms table TIME columns, so they
// are parsed from "HH:MM:SS" strings.
//
// When Close < Open the room is treated as overnight-capable: the window
// resolved for a date runs from Open on that date to Close on the next
// day.  A genuinely 24-hour room is encoded as Open == Close (for example
// "00:00:00"/"00:00:00") and never closes.  The legacy
// "00:00:00".."23:59:59" encoding also parses, but note it excludes the
// final second of the day.
type Hours struct {
	Open  time.Duration // offset from midnight, [0, 24h)
	Close time.Duration // offset from midnight, [0, 24h)
}

// ParseHours builds an Hours policy from the stored open/close strings.
func ParseHours(open, close string) (Hours, error) {
	o, err := parseTimeOfDay(open)
	if err != nil {
		return Hours{}, fmt.Errorf("open_time: %w", err)
	}
	c, err := parseTimeOfDay(close)
	if err != nil {
		return Hours{}, fmt.Errorf("close_time: %w", err)
	}
	return Hours{Open: o, Close: c}, nil
}

func parseTimeOfDay(s string) (time.Duration, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// WindowOn resolves the policy against a calendar date, producing the
// absolute operating window for bookings starting on that date.  The
// date's location is preserved; only its clock time is replaced.
func (h Hours) WindowOn(date time.Time) Interval {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	open := midnight.Add(h.Open)
	close := midnight.Add(h.Close)
	if h.Close <= h.Open {
		// Overnight room: the window crosses midnight into the next day.
		close = midnight.Add(day + h.Close)
	}
	return Interval{Start: open, End: close}
}

// Allows reports whether the candidate fits entirely inside an operating
// window.  A 24-hour room (Open == Close) admits any valid interval.  An
// overnight room checks two windows: the one opening on the candidate's
// start date and the one that opened the evening before, so an event that
// starts after midnight still lands in the window containing it.
func (h Hours) Allows(candidate Interval) bool {
	if h.Close == h.Open {
		return candidate.Valid()
	}
	if candidate.Within(h.WindowOn(candidate.Start)) {
		return true
	}
	if h.Close < h.Open {
		return candidate.Within(h.WindowOn(candidate.Start.AddDate(0, 0, -1)))
	}
	return false
}
