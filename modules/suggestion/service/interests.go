package service

import "strings"

// Sentinel categories returned when no rule can be applied. The two cases
// are deliberately distinct: missing input is not the same as input that
// matched nothing.
const (
	CategoryGeneralVolunteering  = "General Volunteering"
	CategoryCommunityDevelopment = "Community Development"
)

// interestRule fires when a volunteer preference token contains the token
// substring and the event text contains at least one of the keywords.
type interestRule struct {
	token    string
	keywords []string
	category string
}

var interestRules = []interestRule{
	{"education", []string{"education"}, "Education & Youth Development"},
	{"healthcare", []string{"health", "medical"}, "Healthcare & Medical Aid"},
	{"environmental", []string{"environment"}, "Environmental Conservation"},
	{"community", []string{"community"}, "Community Development"},
	{"disaster", []string{"disaster"}, "Disaster Relief & Emergency Response"},
	{"administrative", []string{"administrative"}, "Administrative & Technical Support"},
	{"advocacy", []string{"advocacy"}, "Human Rights & Advocacy"},
	{"animal", []string{"animal"}, "Animal Welfare"},
}

// MatchInterests cross-references the volunteer's comma-separated preference
// list against the event's combined objectives/opportunities text and returns
// the category labels present in both, de-duplicated in insertion order.
//
// Empty input on either side yields ["General Volunteering"]; non-empty input
// that fires no rule yields ["Community Development"].
func MatchInterests(preferences, eventText string) []string {
	if strings.TrimSpace(preferences) == "" || strings.TrimSpace(eventText) == "" {
		return []string{CategoryGeneralVolunteering}
	}

	text := strings.ToLower(eventText)
	seen := make(map[string]bool)
	var matches []string

	for _, token := range strings.Split(preferences, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		for _, rule := range interestRules {
			if !strings.Contains(token, rule.token) {
				continue
			}
			if !containsAny(text, rule.keywords) {
				continue
			}
			if !seen[rule.category] {
				seen[rule.category] = true
				matches = append(matches, rule.category)
			}
		}
	}

	if len(matches) == 0 {
		return []string{CategoryCommunityDevelopment}
	}
	return matches
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
