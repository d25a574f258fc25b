package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	h, err := ParseHours("08:00:00", "18:00:00")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, h.Open)
	assert.Equal(t, 18*time.Hour, h.Close)
}

func TestParseHours_RejectsMalformedValues(t *testing.T) {
	for _, bad := range []string{"", "8am", "25:00:00", "10:61:00", "10:00:99"} {
		_, err := ParseHours(bad, "18:00:00")
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, "open %q", bad)
		_, err = ParseHours("08:00:00", bad)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, "close %q", bad)
	}
}

func TestWindowOn_SameDay(t *testing.T) {
	h, err := ParseHours("08:00:00", "18:00:00")
	require.NoError(t, err)

	w := h.WindowOn(at(0, 0))
	assert.Equal(t, at(8, 0), w.Start)
	assert.Equal(t, at(18, 0), w.End)
}

// TestWindowOn_Overnight: Close <= Open spans midnight into the next day.
func TestWindowOn_Overnight(t *testing.T) {
	h, err := ParseHours("22:00:00", "06:00:00")
	require.NoError(t, err)

	w := h.WindowOn(at(0, 0))
	assert.Equal(t, at(22, 0), w.Start)
	assert.Equal(t, at(6, 0).AddDate(0, 0, 1), w.End)
}

// TestWindowOn_TwentyFourHour: equal open/close resolves to a full day.
func TestWindowOn_TwentyFourHour(t *testing.T) {
	h, err := ParseHours("00:00:00", "00:00:00")
	require.NoError(t, err)

	w := h.WindowOn(at(0, 0))
	assert.Equal(t, at(0, 0), w.Start)
	assert.Equal(t, at(0, 0).AddDate(0, 0, 1), w.End)
	assert.Equal(t, 24*time.Hour, w.Duration())
}

func TestAllows_BusinessHours(t *testing.T) {
	h, err := ParseHours("08:00:00", "18:00:00")
	require.NoError(t, err)

	assert.True(t, h.Allows(span(10, 0, 12, 0)))
	assert.True(t, h.Allows(span(8, 0, 9, 0)), "starts exactly at opening")
	assert.True(t, h.Allows(span(17, 0, 18, 0)), "ends exactly at closing")

	assert.False(t, h.Allows(span(7, 0, 9, 0)), "starts before opening")
	assert.False(t, h.Allows(span(17, 0, 19, 0)), "ends after closing")
	assert.False(t, h.Allows(span(7, 30, 19, 0)), "spans outside both ends")
}

func TestAllows_OvernightRoom(t *testing.T) {
	h, err := ParseHours("22:00:00", "06:00:00")
	require.NoError(t, err)

	overnight := Interval{Start: at(23, 0), End: at(1, 0).AddDate(0, 0, 1)}
	assert.True(t, h.Allows(overnight), "23:00 to 01:00 next day fits a 22:00-06:00 room")

	afternoon := span(14, 0, 15, 0)
	assert.False(t, h.Allows(afternoon), "closed during the day")
}

// TestAllows_OvernightRoomAfterMidnightStart: an event starting after
// midnight belongs to the window that opened the evening before, not the
// one opening later the same day.
func TestAllows_OvernightRoomAfterMidnightStart(t *testing.T) {
	h, err := ParseHours("22:00:00", "06:00:00")
	require.NoError(t, err)

	assert.True(t, h.Allows(span(1, 0, 3, 0)), "01:00-03:00 sits in the window opened at 22:00 yesterday")
	assert.True(t, h.Allows(span(5, 0, 6, 0)), "ends exactly at closing")
	assert.False(t, h.Allows(span(5, 0, 7, 0)), "runs past closing")
	assert.False(t, h.Allows(span(6, 0, 8, 0)), "starts at closing")
}

func TestAllows_TwentyFourHourRoom(t *testing.T) {
	h, err := ParseHours("00:00:00", "00:00:00")
	require.NoError(t, err)

	overnight := Interval{Start: at(23, 0), End: at(1, 0).AddDate(0, 0, 1)}
	assert.True(t, h.Allows(overnight), "24-hour rooms admit midnight-crossing events")

	multiDay := Interval{Start: at(10, 0), End: at(10, 0).AddDate(0, 0, 2)}
	assert.True(t, h.Allows(multiDay), "a room that never closes admits any valid interval")

	assert.False(t, h.Allows(Interval{Start: at(10, 0), End: at(10, 0)}), "still requires a valid interval")
}

// TestAllows_LegacyAlmostFullDayEncoding pins the behavior of the
// "00:00:00".."23:59:59" encoding carried over from the old schema: it is
// NOT a 24-hour room.  An event ending at midnight falls one second
// outside the window, and an overnight event is rejected outright.  Data
// meaning "always open" should use equal open/close instead.
func TestAllows_LegacyAlmostFullDayEncoding(t *testing.T) {
	h, err := ParseHours("00:00:00", "23:59:59")
	require.NoError(t, err)

	assert.True(t, h.Allows(span(23, 0, 23, 59)))
	assert.False(t, h.Allows(Interval{Start: at(23, 0), End: at(0, 0).AddDate(0, 0, 1)}),
		"ending at midnight exceeds 23:59:59 by one second")
	assert.False(t, h.Allows(Interval{Start: at(23, 0), End: at(1, 0).AddDate(0, 0, 1)}))
}
