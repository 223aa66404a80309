package clocktime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TwelveHour(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int64
	}{
		{"9:00:00 AM", 9 * MillisPerHour},
		{"12:00:00 AM", 0},                                         // midnight
		{"12:00:00 PM", 12 * MillisPerHour},                        // noon
		{"6:00:00 PM", 18 * MillisPerHour},
		{"10:37:15 AM", (10*3600 + 37*60 + 15) * 1000},
		{"9:30 PM", (21*3600 + 30*60) * 1000},                      // seconds optional
		{"  9:00:00 AM  ", 9 * MillisPerHour},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParse_TwentyFourHour(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  int64
	}{
		{"09:00:00", 9 * MillisPerHour},
		{"00:00:00", 0},
		{"23:59:59", (23*3600 + 59*60 + 59) * 1000},
		{"17:30", (17*3600 + 30*60) * 1000},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParse_EmptyIsZero(t *testing.T) {
	t.Parallel()

	got, err := Parse("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = Parse("   ")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	bad := []string{
		"banana",
		"9:xx:00 AM",
		"9:00:00 XM",
		"9:00:00 AM PM",
		"25:00:00",
		"9:75:00",
		"9",
	}
	for _, input := range bad {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidClockTime, "input %q", input)
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:00", FormatHoursMinutes(0))
	assert.Equal(t, "0:00", FormatHoursMinutes(-1000))
	assert.Equal(t, "9:05", FormatHoursMinutes((9*3600+5*60)*1000))
	// minutes floor, never round up
	assert.Equal(t, "10:37", FormatHoursMinutes((10*3600+37*60+59)*1000))
	assert.Equal(t, "18:00", FormatHoursMinutes(18*MillisPerHour))
}

func TestHours(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 9.0, Hours(9*MillisPerHour), 1e-9)
	assert.InDelta(t, 8.5, Hours(8*MillisPerHour+30*60*1000), 1e-9)
	assert.InDelta(t, -1.0, Hours(-MillisPerHour), 1e-9)
}
