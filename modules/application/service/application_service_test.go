package service

import (
	"context"
	"testing"

	"volunteerhub/core/errors"
	"volunteerhub/modules/application/dto"
	appEntity "volunteerhub/modules/application/entity"
	eventEntity "volunteerhub/modules/event/entity"
	volunteerEntity "volunteerhub/modules/volunteer/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationService() ApplicationServiceInterface {
	// Validation happens before any dependency is touched.
	return NewApplicationService(nil, nil, nil, nil, nil, nil)
}

func TestApplyRejectsBadIDs(t *testing.T) {
	svc := newValidationService()

	_, appErr := svc.Apply(context.Background(), "ABC123", &dto.CreateApplicationRequest{
		EventID:     "not-a-uuid",
		VolunteerID: uuid.NewString(),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.Apply(context.Background(), "ABC123", &dto.CreateApplicationRequest{
		EventID:     uuid.NewString(),
		VolunteerID: "",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestDecideRejectsUnknownDecision(t *testing.T) {
	svc := newValidationService()

	_, appErr := svc.Decide(context.Background(), uuid.New(), uuid.New(), "ABC123",
		&dto.DecideRequest{Decision: "maybe"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestDecideAdjustedRequiresTimeSlot(t *testing.T) {
	svc := newValidationService()

	_, appErr := svc.Decide(context.Background(), uuid.New(), uuid.New(), "ABC123",
		&dto.DecideRequest{Decision: "adjusted"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Contains(t, appErr.Message, "adjusted_time_slot")
}

func TestDecisionEmailData(t *testing.T) {
	slot := "10:00 AM - 11:00 AM"
	note := "See you there"
	volunteer := &volunteerEntity.Volunteer{FirstName: "Maria", LastName: "Cruz"}
	event := &eventEntity.Event{Title: "Coastal Cleanup", TimeStart: "9:00 AM", TimeEnd: "12:00 PM"}

	adjusted := &appEntity.Application{
		Status:           appEntity.ApplicationStatusAdjusted,
		AdjustedTimeSlot: &slot,
		DecisionNote:     &note,
	}
	data := decisionEmailData(volunteer, event, adjusted)
	assert.Equal(t, "Maria", data.RecipientName)
	assert.Equal(t, slot, data.TimeSlot, "adjusted decisions advertise the adjusted slot")
	assert.Equal(t, "adjusted", data.Decision)
	assert.Equal(t, note, data.Note)

	approved := &appEntity.Application{Status: appEntity.ApplicationStatusApproved}
	data = decisionEmailData(volunteer, event, approved)
	assert.Equal(t, "9:00 AM - 12:00 PM", data.TimeSlot, "approved decisions advertise the event window")

	rejected := &appEntity.Application{Status: appEntity.ApplicationStatusRejected}
	data = decisionEmailData(volunteer, event, rejected)
	assert.Empty(t, data.TimeSlot, "rejections carry no time slot")
}

func TestVolunteerToSuggestionData(t *testing.T) {
	availability := "9:00 AM - 5:00 PM"
	interests := "Education, Animal Welfare"
	v := &volunteerEntity.Volunteer{
		FirstName:             "Maria",
		LastName:              "Cruz",
		TimeAvailability:      &availability,
		PreferredVolunteering: &interests,
	}

	got := volunteerToSuggestionData(v)

	assert.Equal(t, "Maria", got.Firstname)
	assert.Equal(t, "Cruz", got.Lastname)
	assert.Equal(t, availability, got.TimeAvailability)
	assert.Equal(t, interests, got.PreferredVolunteering)
	assert.Empty(t, got.Location) // nil pointers become empty strings
}

func TestEventToSuggestionData(t *testing.T) {
	objectives := "promote education"
	e := &eventEntity.Event{
		Title:           "Tutoring Day",
		TimeStart:       "9:00 AM",
		TimeEnd:         "12:00 PM",
		VolunteersLimit: 15,
		Objectives:      &objectives,
	}

	got := eventToSuggestionData(e)

	assert.Equal(t, "Tutoring Day", got.EventTitle)
	assert.Equal(t, "9:00 AM", got.TimeStart)
	assert.Equal(t, "12:00 PM", got.TimeEnd)
	assert.Equal(t, 15, got.VolunteersLimit)
	assert.Equal(t, objectives, got.EventObjectives)
	assert.Empty(t, got.CallTime)
}
