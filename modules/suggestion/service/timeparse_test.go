package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"midnight 12-hour", "12:00 AM", 0},
		{"noon 12-hour", "12:00 PM", 720},
		{"morning", "9:00 AM", 540},
		{"afternoon", "2:30 PM", 870},
		{"evening no space", "6:00PM", 1080},
		{"lowercase meridiem", "9:00 am", 540},
		{"24-hour", "14:30", 870},
		{"hour only", "9 AM", 540},
		{"missing minutes", "7 PM", 1140},
		{"empty", "", 0},
		{"garbage", "whenever", 0},
		{"digits in noise", "around 3 PM maybe", 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClock(tt.input))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatMinutes(0))
	assert.Equal(t, "12:00 PM", FormatMinutes(720))
	assert.Equal(t, "9:00 AM", FormatMinutes(540))
	assert.Equal(t, "2:30 PM", FormatMinutes(870))
	assert.Equal(t, "11:59 PM", FormatMinutes(1439))
	assert.Equal(t, "12:05 AM", FormatMinutes(5))
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"2:30 PM", "9:00 AM", "12:00 AM", "12:00 PM", "11:59 PM"} {
		assert.Equal(t, clock, FormatMinutes(ParseClock(clock)))
	}
}

func TestParseAvailabilityRange(t *testing.T) {
	r, ok := ParseAvailabilityRange("9:00 AM - 5:00 PM")
	require.True(t, ok)
	assert.Equal(t, 540, r.Start)
	assert.Equal(t, 1020, r.End)

	r, ok = ParseAvailabilityRange("10:00AM - 2:30PM")
	require.True(t, ok)
	assert.Equal(t, 600, r.Start)
	assert.Equal(t, 870, r.End)

	for _, bad := range []string{"", "weekends only", "9 AM - 5 PM", "9:00 - 17:00", "9:00 AM to 5:00 PM"} {
		_, ok := ParseAvailabilityRange(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
