package dto

// VolunteerData is the volunteer snapshot sent into the suggestion engine.
// Field names follow the review-screen payload.
type VolunteerData struct {
	Firstname             string `json:"firstname"`
	Lastname              string `json:"lastname"`
	DaysAvailable         string `json:"days_available"`
	TimeAvailability      string `json:"time_availability"`
	BusyHours             string `json:"busy_hours"`
	PreferredVolunteering string `json:"preferred_volunteering"`
	Location              string `json:"location"`
}

// EventData is the event snapshot sent into the suggestion engine.
type EventData struct {
	EventID                string `json:"event_id"`
	EventTitle             string `json:"event_title"`
	Date                   string `json:"date"`
	TimeStart              string `json:"time_start"`
	TimeEnd                string `json:"time_end"`
	CallTime               string `json:"call_time"`
	VolunteersLimit        int    `json:"volunteers_limit"`
	EventObjectives        string `json:"event_objectives"`
	Description            string `json:"description"`
	Location               string `json:"location"`
	VolunteerOpportunities string `json:"volunteer_opportunities"`
}

// SuggestRequest is the request body for the suggestion endpoint and the
// payload forwarded to the remote generative service.
type SuggestRequest struct {
	VolunteerData VolunteerData `json:"volunteerData"`
	EventData     EventData     `json:"eventData"`
}

// SuggestionResult is the advisory scheduling suggestion shown on the
// application-review screen. Scores are rendered as integer strings.
type SuggestionResult struct {
	RecommendedTimeSlot    string   `json:"recommendedTimeSlot"`
	Duration               string   `json:"duration"`
	MatchingVolunteerTypes []string `json:"matchingVolunteerTypes"`
	CompatibilityScore     string   `json:"compatibilityScore"`
	TimeOverlapScore       string   `json:"timeOverlapScore"`
	ProximityScore         string   `json:"proximityScore"`
	SkillMatchScore        string   `json:"skillMatchScore"`
	Reasoning              string   `json:"reasoning"`
}
