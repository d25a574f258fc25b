package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-booking/internal/booking"
)

func testContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

// JWT claims arrive as float64 after the JSON round-trip; getUserID must
// accept that along with the plainer numeric types.
func TestGetUserID_AcceptsClaimEncodings(t *testing.T) {
	for name, v := range map[string]any{
		"uint64":  uint64(7),
		"int":     int(7),
		"int64":   int64(7),
		"float64": float64(7),
		"string":  "7",
	} {
		t.Run(name, func(t *testing.T) {
			c := testContext(t)
			c.Set("user_id", v)
			id, err := getUserID(c)
			require.NoError(t, err)
			assert.Equal(t, uint64(7), id)
		})
	}
}

func TestGetUserID_RejectsMissingOrGarbage(t *testing.T) {
	c := testContext(t)
	_, err := getUserID(c)
	assert.Error(t, err, "nothing set")

	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestPathID(t *testing.T) {
	c := testContext(t)
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := pathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		c := testContext(t)
		c.SetParamNames("id")
		c.SetParamValues(bad)
		_, err := pathID(c, "id")
		assert.Error(t, err, "value %q", bad)
	}
}

// Every reason the engine can produce must have a user-readable message;
// a missing entry would surface an empty error string to clients.
func TestRejectionMessages_CoverAllReasons(t *testing.T) {
	reasons := []booking.Reason{
		booking.ReasonInvalidInterval,
		booking.ReasonInvalidParticipants,
		booking.ReasonCapacityExceeded,
		booking.ReasonOutsideHours,
		booking.ReasonCumulativeCapacity,
		booking.ReasonOverlapConflict,
	}
	for _, r := range reasons {
		assert.NotEmpty(t, rejectionMessages[r], "reason %s", r)
	}
}
