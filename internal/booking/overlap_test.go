package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-booking/internal/model"
)

func event(id uint64, startHour, endHour int, participants uint32) model.Event {
	return model.Event{
		ID:           id,
		RoomID:       1,
		Title:        "event",
		StartsAt:     at(startHour, 0),
		EndsAt:       at(endHour, 0),
		Participants: participants,
	}
}

func TestOverlapping_FiltersIntersectingEvents(t *testing.T) {
	events := []model.Event{
		event(1, 8, 9, 10),   // before candidate
		event(2, 9, 11, 10),  // ends during candidate
		event(3, 11, 13, 10), // starts during candidate
		event(4, 12, 14, 10), // back-to-back after candidate
	}

	got := Overlapping(span(10, 0, 12, 0), events, 0)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

// TestOverlapping_PreservesSnapshotOrder: results come back in the
// order of the underlying snapshot, no sorting.
func TestOverlapping_PreservesSnapshotOrder(t *testing.T) {
	events := []model.Event{
		event(7, 11, 13, 10),
		event(2, 9, 11, 10),
		event(5, 10, 12, 10),
	}

	got := Overlapping(span(10, 0, 12, 0), events, 0)
	require.Len(t, got, 3)
	assert.Equal(t, []uint64{7, 2, 5}, []uint64{got[0].ID, got[1].ID, got[2].ID})
}

func TestOverlapping_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Overlapping(span(10, 0, 12, 0), nil, 0))
}

// TestOverlapping_ExcludesOwnPriorVersion: re-validating an edit must
// not treat the event's stored version as a conflict with itself.
func TestOverlapping_ExcludesOwnPriorVersion(t *testing.T) {
	events := []model.Event{
		event(42, 10, 12, 10), // prior version of the event being edited
		event(43, 11, 13, 10),
	}

	got := Overlapping(span(10, 0, 12, 0), events, 42)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(43), got[0].ID)
}

func TestHasOverlap(t *testing.T) {
	events := []model.Event{event(1, 10, 12, 10)}

	assert.True(t, HasOverlap(span(11, 0, 13, 0), events, 0))
	assert.False(t, HasOverlap(span(12, 0, 14, 0), events, 0), "back-to-back is not an overlap")
	assert.False(t, HasOverlap(span(11, 0, 13, 0), events, 1), "own id excluded")
	assert.False(t, HasOverlap(span(11, 0, 13, 0), nil, 0))
}
