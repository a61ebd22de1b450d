package dto

import (
	"time"

	"volunteerhub/modules/application/entity"
	eventDto "volunteerhub/modules/event/dto"
	suggestionDto "volunteerhub/modules/suggestion/dto"
	volunteerDto "volunteerhub/modules/volunteer/dto"
)

// ===================== Request DTOs =====================

// CreateApplicationRequest records a volunteer's application to an event
type CreateApplicationRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	VolunteerID string `json:"volunteer_id" validate:"required"`
	Message     string `json:"message"`
}

// DecideRequest resolves a pending application. Decision is one of
// approved, adjusted, rejected; adjusted requires a time slot.
type DecideRequest struct {
	Decision         string `json:"decision" validate:"required"`
	AdjustedTimeSlot string `json:"adjusted_time_slot"`
	Note             string `json:"note"`
}

// ===================== Response DTOs =====================

// ApplicationResponse for application details
type ApplicationResponse struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	VolunteerID      string     `json:"volunteer_id"`
	Status           string     `json:"status"`
	Message          string     `json:"message,omitempty"`
	AdjustedTimeSlot string     `json:"adjusted_time_slot,omitempty"`
	DecisionNote     string     `json:"decision_note,omitempty"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ReviewResponse is the full review screen payload: the application, the
// applicant, the event, and the advisory scheduling suggestion.
type ReviewResponse struct {
	Application *ApplicationResponse            `json:"application"`
	Volunteer   *volunteerDto.VolunteerResponse `json:"volunteer"`
	Event       *eventDto.EventResponse         `json:"event"`
	Suggestion  *suggestionDto.SuggestionResult `json:"suggestion"`
}

func ToApplicationResponse(app *entity.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          app.ID.String(),
		EventID:     app.EventID.String(),
		VolunteerID: app.VolunteerID.String(),
		Status:      string(app.Status),
		DecidedAt:   app.DecidedAt,
		CreatedAt:   app.CreatedAt,
	}
	if app.Message != nil {
		resp.Message = *app.Message
	}
	if app.AdjustedTimeSlot != nil {
		resp.AdjustedTimeSlot = *app.AdjustedTimeSlot
	}
	if app.DecisionNote != nil {
		resp.DecisionNote = *app.DecisionNote
	}
	return resp
}
