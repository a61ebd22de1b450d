package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchInterests(t *testing.T) {
	// The animal rule must not fire: the event text never mentions animals.
	got := MatchInterests("Education, Animal Welfare", "promote education and environment")
	assert.Equal(t, []string{"Education & Youth Development"}, got)
}

func TestMatchInterestsMultiple(t *testing.T) {
	got := MatchInterests(
		"Education, Healthcare, Environmental Work",
		"education outreach with health screenings and environment cleanup")
	assert.Equal(t, []string{
		"Education & Youth Development",
		"Healthcare & Medical Aid",
		"Environmental Conservation",
	}, got)
}

func TestMatchInterestsDeduplicates(t *testing.T) {
	got := MatchInterests("Education, education tutoring", "education drive")
	assert.Equal(t, []string{"Education & Youth Development"}, got)
}

func TestMatchInterestsEmptyInputSentinel(t *testing.T) {
	assert.Equal(t, []string{CategoryGeneralVolunteering}, MatchInterests("", "education drive"))
	assert.Equal(t, []string{CategoryGeneralVolunteering}, MatchInterests("Education", ""))
	assert.Equal(t, []string{CategoryGeneralVolunteering}, MatchInterests("   ", "   "))
}

func TestMatchInterestsNoMatchSentinel(t *testing.T) {
	// Non-empty inputs that fire no rule are distinct from empty inputs.
	got := MatchInterests("Cooking, Gardening", "education drive")
	assert.Equal(t, []string{CategoryCommunityDevelopment}, got)
	assert.NotEqual(t, []string{CategoryGeneralVolunteering}, got)
}

func TestMatchInterestsCaseInsensitive(t *testing.T) {
	got := MatchInterests("EDUCATION", "Promote EDUCATION for all")
	assert.Equal(t, []string{"Education & Youth Development"}, got)
}

func TestMatchInterestsCommunityRule(t *testing.T) {
	// "Community Development" via a fired rule, not via the sentinel path.
	got := MatchInterests("Community Outreach, Disaster Response", "community rebuilding after the disaster")
	assert.Equal(t, []string{"Community Development", "Disaster Relief & Emergency Response"}, got)
}
