package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-booking/internal/model"
)

// candidate builds an unpersisted event proposal in room 1.
func candidate(startHour, endHour int, participants uint32) model.Event {
	return model.Event{
		RoomID:       1,
		Title:        "Team Meeting",
		StartsAt:     at(startHour, 0),
		EndsAt:       at(endHour, 0),
		Participants: participants,
	}
}

// TestValidate_AdmitsWithinHoursAndCapacity: room capacity 50, hours
// 08:00-18:00, candidate 10:00-11:00 with 20 participants.
func TestValidate_AdmitsWithinHoursAndCapacity(t *testing.T) {
	d := Validator{}.Validate(room(50), candidate(10, 11, 20), nil, 0)

	assert.True(t, d.Admitted)
	assert.Empty(t, d.Reason)
	assert.Empty(t, d.Conflicts)
}

func TestValidate_RejectsInvalidInterval(t *testing.T) {
	d := Validator{}.Validate(room(50), candidate(12, 10, 20), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonInvalidInterval, d.Reason)

	d = Validator{}.Validate(room(50), candidate(10, 10, 20), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonInvalidInterval, d.Reason, "zero duration")
}

func TestValidate_RejectsZeroParticipants(t *testing.T) {
	d := Validator{}.Validate(room(50), candidate(10, 11, 0), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonInvalidParticipants, d.Reason)
}

// TestValidate_RejectsOversizedEventRegardlessOfTime: a single event
// larger than the room fails before any hours or overlap work.
func TestValidate_RejectsOversizedEventRegardlessOfTime(t *testing.T) {
	d := Validator{}.Validate(room(50), candidate(10, 11, 60), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonCapacityExceeded, d.Reason)

	// Outside hours too, but the capacity check wins: it runs first.
	d = Validator{}.Validate(room(50), candidate(6, 7, 60), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonCapacityExceeded, d.Reason)
}

func TestValidate_AdmitsExactCapacity(t *testing.T) {
	d := Validator{}.Validate(room(50), candidate(10, 11, 50), nil, 0)
	assert.True(t, d.Admitted)
}

// TestValidate_RejectsOutsideOperatingHours: candidate 07:30-19:00 in an
// 08:00-18:00 room.
func TestValidate_RejectsOutsideOperatingHours(t *testing.T) {
	c := candidate(7, 19, 20)
	c.StartsAt = at(7, 30)
	d := Validator{}.Validate(room(50), c, nil, 0)

	require.False(t, d.Admitted)
	assert.Equal(t, ReasonOutsideHours, d.Reason)
}

// TestValidate_TwentyFourHourRoomAdmitsOvernight: a room encoded with
// equal open and close never closes, so a 23:00 to 01:00-next-day event
// is admitted end to end.
func TestValidate_TwentyFourHourRoomAdmitsOvernight(t *testing.T) {
	r := room(50)
	r.OpenTime, r.CloseTime = "00:00:00", "00:00:00"

	c := candidate(23, 23, 20)
	c.EndsAt = at(1, 0).AddDate(0, 0, 1)

	d := Validator{}.Validate(r, c, nil, 0)
	assert.True(t, d.Admitted)
	assert.Empty(t, d.Reason)
}

func TestValidate_HoursBoundariesInclusive(t *testing.T) {
	assert.True(t, Validator{}.Validate(room(50), candidate(8, 9, 20), nil, 0).Admitted,
		"starts exactly at opening")
	assert.True(t, Validator{}.Validate(room(50), candidate(17, 18, 20), nil, 0).Admitted,
		"ends exactly at closing")
}

// TestValidate_RejectsCumulativeCapacityBreach: existing 10:00-12:00
// with 30 participants, candidate 11:00-13:00 with 25; 55 > 50.
func TestValidate_RejectsCumulativeCapacityBreach(t *testing.T) {
	existing := []model.Event{event(1, 10, 12, 30)}
	d := Validator{}.Validate(room(50), candidate(11, 13, 25), existing, 0)

	require.False(t, d.Admitted)
	assert.Equal(t, ReasonCumulativeCapacity, d.Reason)
	require.Len(t, d.Conflicts, 1)
	assert.Equal(t, uint64(1), d.Conflicts[0].ID)
}

// TestValidate_NonOverlappingEventsNeverAggregate: existing 09:00-10:00
// with 40, candidate 11:00-12:00 with 45; 85 > 50 is irrelevant because
// the intervals are disjoint.
func TestValidate_NonOverlappingEventsNeverAggregate(t *testing.T) {
	existing := []model.Event{event(1, 9, 10, 40)}
	d := Validator{}.Validate(room(50), candidate(11, 12, 45), existing, 0)

	assert.True(t, d.Admitted)
}

// TestValidate_AdmitsBackToBack: candidate starting exactly at an
// existing event's end is no overlap under half-open semantics.
func TestValidate_AdmitsBackToBack(t *testing.T) {
	existing := []model.Event{event(1, 10, 12, 40)}

	d := Validator{}.Validate(room(50), candidate(12, 13, 40), existing, 0)
	assert.True(t, d.Admitted, "starts at existing end")

	d = Validator{}.Validate(room(50), candidate(9, 10, 40), existing, 0)
	assert.True(t, d.Admitted, "ends at existing start")
}

// TestValidate_OvernightRoom: a 22:00-06:00 room admits a 23:00 to
// 01:00-next-day event.
func TestValidate_OvernightRoom(t *testing.T) {
	r := room(50)
	r.OpenTime = "22:00:00"
	r.CloseTime = "06:00:00"

	c := model.Event{
		RoomID:       1,
		Title:        "Late Night Event",
		StartsAt:     at(23, 0),
		EndsAt:       at(1, 0).AddDate(0, 0, 1),
		Participants: 10,
	}
	assert.True(t, Validator{}.Validate(r, c, nil, 0).Admitted)
}

func TestValidate_OverlapAdmittedWhileCapacityHolds(t *testing.T) {
	existing := []model.Event{event(1, 10, 12, 30)}

	// Default policy: 30 + 20 = 50 fits a 50-seat room despite overlap.
	d := Validator{}.Validate(room(50), candidate(11, 13, 20), existing, 0)
	assert.True(t, d.Admitted)
}

// TestValidate_StrictOverlapPolicy: the alternate policy forbids any
// overlap even when the room could seat everyone.
func TestValidate_StrictOverlapPolicy(t *testing.T) {
	existing := []model.Event{event(1, 10, 12, 5)}
	v := Validator{StrictOverlap: true}

	d := v.Validate(room(50), candidate(11, 13, 5), existing, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonOverlapConflict, d.Reason)
	require.Len(t, d.Conflicts, 1)

	// Back-to-back stays legal even under the strict policy.
	assert.True(t, v.Validate(room(50), candidate(12, 13, 5), existing, 0).Admitted)
}

// TestValidate_ExcludesOwnIDOnRevalidation: an edited event does not
// conflict with its own stored version.
func TestValidate_ExcludesOwnIDOnRevalidation(t *testing.T) {
	existing := []model.Event{event(42, 10, 12, 30)}

	edited := candidate(10, 12, 35)
	d := Validator{}.Validate(room(50), edited, existing, 42)
	assert.True(t, d.Admitted)

	// Without the exclusion the stored version would push the total to 65.
	d = Validator{}.Validate(room(50), edited, existing, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonCumulativeCapacity, d.Reason)
}

// TestValidate_Deterministic: same snapshot, same verdict.
func TestValidate_Deterministic(t *testing.T) {
	existing := []model.Event{event(1, 10, 12, 30), event(2, 9, 10, 15)}
	c := candidate(11, 13, 25)

	first := Validator{}.Validate(room(50), c, existing, 0)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Validator{}.Validate(room(50), c, existing, 0))
	}
}

func TestValidate_UnparseableRoomHoursRejects(t *testing.T) {
	r := room(50)
	r.CloseTime = "not-a-time"

	d := Validator{}.Validate(r, candidate(10, 11, 20), nil, 0)
	require.False(t, d.Admitted)
	assert.Equal(t, ReasonOutsideHours, d.Reason)
}
