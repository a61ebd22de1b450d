package service

import (
	"testing"

	"volunteerhub/modules/suggestion/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeScoreSingleMatch(t *testing.T) {
	overlap := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 600, End: 660})
	got := ComposeScore(overlap, []string{"Education & Youth Development"})

	assert.Equal(t, "10:00 AM - 11:00 AM", got.RecommendedTimeSlot)
	assert.Equal(t, "1 hours", got.Duration)
	assert.Equal(t, "17", got.TimeOverlapScore)
	assert.Equal(t, "20", got.ProximityScore)
	assert.Equal(t, "10", got.SkillMatchScore)
	assert.Equal(t, "47", got.CompatibilityScore)
	assert.Equal(t,
		"Time overlap contributes 17%, location proximity 20%, and interest match 10% to the compatibility score.",
		got.Reasoning)
}

func TestComposeScoreMultipleMatchesBonus(t *testing.T) {
	overlap := ComputeOverlap(TimeRange{Start: 540, End: 720}, TimeRange{Start: 540, End: 720})
	got := ComposeScore(overlap, []string{"Education & Youth Development", "Animal Welfare"})

	assert.Equal(t, "20", got.SkillMatchScore)
	assert.Equal(t, "90", got.CompatibilityScore)
}

func TestComposeScoreCeilingIsNinety(t *testing.T) {
	// Full overlap + multiple matches + the proximity constant caps at 90.
	// The score is not rescaled or clamped to 100.
	overlap := ComputeOverlap(TimeRange{Start: 0, End: 1439}, TimeRange{Start: 0, End: 1439})
	require.Equal(t, 50, overlap.TimeOverlapScore)

	got := ComposeScore(overlap, []string{"a", "b", "c"})
	assert.Equal(t, "90", got.CompatibilityScore)
	assert.NotEqual(t, "100", got.CompatibilityScore)
}

func TestComputeFallbackNoAvailability(t *testing.T) {
	got := ComputeFallback(
		dto.VolunteerData{PreferredVolunteering: "Education"},
		dto.EventData{TimeStart: "9:00 AM", TimeEnd: "12:00 PM", EventObjectives: "education drive"})

	assert.Equal(t, "No time availability provided", got.RecommendedTimeSlot)
	assert.Equal(t, "0 hours", got.Duration)
	assert.Equal(t, "0", got.CompatibilityScore)
	assert.Equal(t, "0", got.TimeOverlapScore)
	assert.Equal(t, "0", got.ProximityScore)
	assert.Equal(t, "0", got.SkillMatchScore)
	assert.Empty(t, got.MatchingVolunteerTypes)
	assert.NotNil(t, got.MatchingVolunteerTypes)
}

func TestComputeFallbackBadAvailabilityFormat(t *testing.T) {
	got := ComputeFallback(
		dto.VolunteerData{TimeAvailability: "weekends only"},
		dto.EventData{TimeStart: "9:00 AM", TimeEnd: "12:00 PM"})

	assert.Equal(t, "Availability format not recognized", got.RecommendedTimeSlot)
	assert.Equal(t, "0", got.CompatibilityScore)
}

func TestComputeFallbackNoOverlap(t *testing.T) {
	got := ComputeFallback(
		dto.VolunteerData{TimeAvailability: "6:00 PM - 9:00 PM"},
		dto.EventData{TimeStart: "9:00 AM", TimeEnd: "12:00 PM"})

	assert.Equal(t, "No overlap between volunteer availability and event schedule", got.RecommendedTimeSlot)
	assert.Equal(t, "0", got.CompatibilityScore)
}

func TestComputeFallbackShortCircuitPriority(t *testing.T) {
	// Empty availability wins over every later condition.
	got := ComputeFallback(
		dto.VolunteerData{TimeAvailability: "   "},
		dto.EventData{TimeStart: "garbage", TimeEnd: "garbage"})
	assert.Equal(t, "No time availability provided", got.RecommendedTimeSlot)

	// Unparseable availability wins over the overlap check.
	got = ComputeFallback(
		dto.VolunteerData{TimeAvailability: "9 to 5"},
		dto.EventData{TimeStart: "9:00 AM", TimeEnd: "12:00 PM"})
	assert.Equal(t, "Availability format not recognized", got.RecommendedTimeSlot)
}

func TestComputeFallbackHappyPath(t *testing.T) {
	got := ComputeFallback(
		dto.VolunteerData{
			TimeAvailability:      "10:00 AM - 11:00 AM",
			PreferredVolunteering: "Education, Animal Welfare",
		},
		dto.EventData{
			TimeStart:              "9:00 AM",
			TimeEnd:                "12:00 PM",
			EventObjectives:        "promote education",
			VolunteerOpportunities: "tutoring",
		})

	assert.Equal(t, "10:00 AM - 11:00 AM", got.RecommendedTimeSlot)
	assert.Equal(t, "1 hours", got.Duration)
	assert.Equal(t, []string{"Education & Youth Development"}, got.MatchingVolunteerTypes)
	assert.Equal(t, "47", got.CompatibilityScore)
}
