//go:build unit

package pricing_test

import (
	"testing"

	"vtcquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) pricing.TimeOfDay {
	t.Helper()
	tod, err := pricing.NewTimeOfDay(value)
	require.NoError(t, err)
	return tod
}

func mustWindow(t *testing.T, start, end string) pricing.NightWindow {
	t.Helper()
	w, err := pricing.ParseNightWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestSplitByNightWindow(t *testing.T) {
	type testCase struct {
		name        string
		start       string
		duration    int
		windowStart string
		windowEnd   string
		wantDay     int
		wantNight   int
	}

	cases := []testCase{
		{
			name:  "zero duration",
			start: "12:00", duration: 0,
			windowStart: "20:00", windowEnd: "06:00",
			wantDay: 0, wantNight: 0,
		},
		{
			name:  "fully inside day",
			start: "10:00", duration: 60,
			windowStart: "20:00", windowEnd: "06:00",
			wantDay: 60, wantNight: 0,
		},
		{
			name:  "fully inside wrapped night",
			start: "22:00", duration: 120,
			windowStart: "20:00", windowEnd: "06:00",
			wantDay: 0, wantNight: 120,
		},
		{
			name:  "crosses midnight inside wrapped window",
			start: "23:50", duration: 40,
			windowStart: "20:00", windowEnd: "06:00",
			wantDay: 0, wantNight: 40,
		},
		{
			name:  "non-wrapping window boundary crossing",
			start: "05:50", duration: 20,
			windowStart: "00:00", windowEnd: "06:00",
			wantDay: 10, wantNight: 10,
		},
		{
			name:  "enters window mid-trip",
			start: "19:30", duration: 60,
			windowStart: "20:00", windowEnd: "06:00",
			wantDay: 30, wantNight: 30,
		},
		{
			name:  "double crossing over a full day",
			start: "05:00", duration: 24 * 60,
			windowStart: "22:00", windowEnd: "06:00",
			wantDay: 16 * 60, wantNight: 8 * 60,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			window := mustWindow(t, tc.windowStart, tc.windowEnd)
			split := pricing.SplitByNightWindow(mustTime(t, tc.start), tc.duration, window)

			assert.Equal(t, tc.wantDay, split.DayMinutes, "day minutes")
			assert.Equal(t, tc.wantNight, split.NightMinutes, "night minutes")
			assert.Equal(t, tc.duration, split.Total(), "conservation: day + night == duration")
		})
	}
}

func TestNightWindowContains(t *testing.T) {
	wrapped := mustWindow(t, "20:00", "06:00")
	assert.True(t, wrapped.Contains(mustTime(t, "23:00")))
	assert.True(t, wrapped.Contains(mustTime(t, "03:00")))
	assert.True(t, wrapped.Contains(mustTime(t, "20:00")), "start is inclusive")
	assert.False(t, wrapped.Contains(mustTime(t, "06:00")), "end is exclusive")
	assert.False(t, wrapped.Contains(mustTime(t, "12:00")))

	plain := mustWindow(t, "00:00", "06:00")
	assert.True(t, plain.Contains(mustTime(t, "00:00")))
	assert.True(t, plain.Contains(mustTime(t, "05:59")))
	assert.False(t, plain.Contains(mustTime(t, "06:00")))
	assert.False(t, plain.Contains(mustTime(t, "23:59")))
}

func TestTimeOfDayParsing(t *testing.T) {
	_, err := pricing.NewTimeOfDay("25:00")
	assert.ErrorIs(t, err, pricing.ErrInvalidTimeOfDay)

	_, err = pricing.NewTimeOfDay("not-a-time")
	assert.ErrorIs(t, err, pricing.ErrInvalidTimeOfDay)

	tod, err := pricing.NewTimeOfDay("23:45")
	require.NoError(t, err)
	assert.Equal(t, 23*60+45, tod.Minutes())
	assert.Equal(t, "23:45", tod.String())

	wrapped := tod.AddMinutes(30)
	assert.Equal(t, "00:15", wrapped.String(), "AddMinutes wraps past midnight")
}
