package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinAvailability(t *testing.T) {
	availability := map[string][]string{
		"Monday": {"09:00-12:00", "14:00-16:00"},
		"Friday": {"08:30-10:30"},
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside first range", monday(9, 30), monday(10, 30), true},
		{"exact range", monday(9, 0), monday(12, 0), true},
		{"touches range end", monday(11, 0), monday(12, 0), true},
		{"inside second range", monday(14, 0), monday(15, 0), true},
		{"before range", monday(8, 0), monday(9, 0), false},
		{"straddles gap", monday(11, 30), monday(14, 30), false},
		{"past range end", monday(15, 30), monday(16, 30), false},
		{"no ranges for day", monday(9, 0).AddDate(0, 0, 1), monday(10, 0).AddDate(0, 0, 1), false},
		{"friday half-hour boundary", monday(8, 30).AddDate(0, 0, 4), monday(10, 30).AddDate(0, 0, 4), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := withinAvailability(availability, tc.start, tc.end, time.UTC)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Weekday and hours come from the configured reference zone, not from the
// zone the client happened to send the timestamp in.
func TestWithinAvailabilityUsesLocation(t *testing.T) {
	availability := map[string][]string{"Monday": {"09:00-12:00"}}

	nairobi := time.FixedZone("EAT", 3*60*60)
	// 06:00 UTC Monday is 09:00 in Nairobi.
	start := time.Date(2026, time.March, 2, 6, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.True(t, withinAvailability(availability, start, end, nairobi))
	assert.False(t, withinAvailability(availability, start.Add(-2*time.Hour), end.Add(-2*time.Hour), nairobi))
}

func TestSplitRange(t *testing.T) {
	start, end, ok := SplitRange("09:00-12:30")
	require.True(t, ok)
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "12:30", end)

	for _, bad := range []string{"", "09:00", "-12:00", "09:00-"} {
		_, _, ok := SplitRange(bad)
		assert.False(t, ok, "range %q should not parse", bad)
	}
}

func TestWeekWindow(t *testing.T) {
	// Wednesday 4 March 2026.
	wed := time.Date(2026, time.March, 4, 15, 45, 0, 0, time.UTC)
	start, end := weekWindow(wed, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.Equal(t, time.Date(2026, time.March, 7, 23, 59, 59, 999000000, time.UTC), end)

	// A Sunday belongs to the week it starts.
	sun := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	start, _ = weekWindow(sun, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)

	// A Saturday booking stays inside the window opened six days earlier.
	sat := time.Date(2026, time.March, 7, 23, 0, 0, 0, time.UTC)
	start, end = weekWindow(sat, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, sat.Before(end))
}

func TestValidateIntervalOrder(t *testing.T) {
	env := newTestEnv(t)
	c := env.counselor.counselors[testCounselorID]

	err := env.engine.validateInterval(c, monday(10, 0), monday(10, 0))
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInput, CodeOf(err))

	err = env.engine.validateInterval(c, monday(9, 0), monday(10, 0))
	assert.NoError(t, err)
}
