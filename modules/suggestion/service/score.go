package service

import (
	"fmt"
	"strconv"
	"strings"

	"volunteerhub/modules/suggestion/dto"
)

// proximityScore is a fixed stub: no geographic distance is computed even
// though location fields are carried through the payload. Changing this
// constant changes every observable compatibility score.
const proximityScore = 20

// ComposeScore combines the overlap result and interest matches into a full
// suggestion. The additive ceiling is 50+20+20 = 90, not 100; the score is
// deliberately not rescaled.
func ComposeScore(overlap OverlapResult, matches []string) *dto.SuggestionResult {
	skillMatchScore := 10
	if len(matches) > 1 {
		skillMatchScore = 20
	}

	compatibility := overlap.TimeOverlapScore + proximityScore + skillMatchScore

	return &dto.SuggestionResult{
		RecommendedTimeSlot:    overlap.Slot(),
		Duration:               FormatDuration(overlap.Duration),
		MatchingVolunteerTypes: matches,
		CompatibilityScore:     strconv.Itoa(compatibility),
		TimeOverlapScore:       strconv.Itoa(overlap.TimeOverlapScore),
		ProximityScore:         strconv.Itoa(proximityScore),
		SkillMatchScore:        strconv.Itoa(skillMatchScore),
		Reasoning: fmt.Sprintf(
			"Time overlap contributes %d%%, location proximity %d%%, and interest match %d%% to the compatibility score.",
			overlap.TimeOverlapScore, proximityScore, skillMatchScore),
	}
}

// zeroResult builds a fully-populated suggestion with every score forced to
// "0" and a human-readable explanation of which condition short-circuited.
func zeroResult(slotText, reasoning string) *dto.SuggestionResult {
	return &dto.SuggestionResult{
		RecommendedTimeSlot:    slotText,
		Duration:               "0 hours",
		MatchingVolunteerTypes: []string{},
		CompatibilityScore:     "0",
		TimeOverlapScore:       "0",
		ProximityScore:         "0",
		SkillMatchScore:        "0",
		Reasoning:              reasoning,
	}
}

// ComputeFallback runs the deterministic local pipeline: parse availability,
// intersect with the event window, match interests, compose the score.
//
// The three short-circuit conditions are mutually exclusive and checked in
// priority order: availability absent, availability unparseable, no overlap.
// Each produces a usable zero-score suggestion instead of an error.
func ComputeFallback(volunteer dto.VolunteerData, event dto.EventData) *dto.SuggestionResult {
	availability := strings.TrimSpace(volunteer.TimeAvailability)
	if availability == "" {
		return zeroResult(
			"No time availability provided",
			"The volunteer has not specified a time availability, so no slot could be recommended.")
	}

	volunteerRange, ok := ParseAvailabilityRange(availability)
	if !ok {
		return zeroResult(
			"Availability format not recognized",
			"The volunteer's time availability could not be read as \"H:MM AM/PM - H:MM AM/PM\", so no slot could be recommended.")
	}

	eventRange := TimeRange{
		Start: ParseClock(event.TimeStart),
		End:   ParseClock(event.TimeEnd),
	}

	overlap := ComputeOverlap(eventRange, volunteerRange)
	if !overlap.HasOverlap() {
		return zeroResult(
			"No overlap between volunteer availability and event schedule",
			"The volunteer's availability window does not intersect the event's time window.")
	}

	matches := MatchInterests(
		volunteer.PreferredVolunteering,
		event.EventObjectives+" "+event.VolunteerOpportunities)

	return ComposeScore(overlap, matches)
}
