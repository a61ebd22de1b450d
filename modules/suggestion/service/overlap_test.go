package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverlapBoundary(t *testing.T) {
	// Event 9:00 AM - 12:00 PM, volunteer 10:00 AM - 11:00 AM.
	got := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 600, End: 660})

	assert.Equal(t, 600, got.Start)
	assert.Equal(t, 660, got.End)
	assert.Equal(t, 60, got.Duration)
	assert.Equal(t, 17, got.TimeOverlapScore) // round(60/180*50)
	assert.Equal(t, "1 hours", FormatDuration(got.Duration))
	assert.Equal(t, "10:00 AM - 11:00 AM", got.Slot())
}

func TestComputeOverlapDisjoint(t *testing.T) {
	got := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 800, End: 900})

	assert.False(t, got.HasOverlap())
	assert.Zero(t, got.Duration)
	assert.Zero(t, got.TimeOverlapScore)
}

func TestComputeOverlapFullCover(t *testing.T) {
	// Volunteer window covers the whole event: ratio 1, score 50.
	got := ComputeOverlap(TimeRange{Start: 540, End: 1020}, TimeRange{Start: 480, End: 1080})

	assert.Equal(t, 540, got.Start)
	assert.Equal(t, 1020, got.End)
	assert.Equal(t, 50, got.TimeOverlapScore)
}

func TestComputeOverlapTouchingEdges(t *testing.T) {
	// Shared boundary minute is not an overlap.
	got := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 720, End: 900})
	assert.False(t, got.HasOverlap())
}

func TestComputeOverlapIdempotent(t *testing.T) {
	event := TimeRange{Start: 540, End: 720}
	volunteer := TimeRange{Start: 600, End: 700}

	first := ComputeOverlap(event, volunteer)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ComputeOverlap(event, volunteer))
	}
}

func TestMatchInterestsIdempotent(t *testing.T) {
	preferences := "Education, Animal Welfare"
	eventText := "promote education and animal care"

	first := MatchInterests(preferences, eventText)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, MatchInterests(preferences, eventText))
	}
}

func TestComposeScoreIdempotent(t *testing.T) {
	overlap := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 600, End: 700})
	matches := []string{"Education & Youth Development"}

	first := ComposeScore(overlap, matches)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ComposeScore(overlap, matches))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{60, "1 hours"},
		{120, "2 hours"},
		{45, "45 minutes"},
		{0, "0 minutes"},
		{90, "1 hours 30 minutes"},
		{150, "2 hours 30 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}
