package dto

import (
	"time"

	"volunteerhub/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new event
type CreateEventRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Date            string `json:"date" validate:"required"` // YYYY-MM-DD
	TimeStart       string `json:"time_start" validate:"required"`
	TimeEnd         string `json:"time_end" validate:"required"`
	CallTime        string `json:"call_time"`
	VolunteersLimit int    `json:"volunteers_limit" validate:"required,min=1"`
	Objectives      string `json:"objectives"`
	Opportunities   string `json:"opportunities"`
}

// UpdateEventRequest for updating event details
type UpdateEventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	TimeStart       string `json:"time_start"`
	TimeEnd         string `json:"time_end"`
	CallTime        string `json:"call_time"`
	VolunteersLimit int    `json:"volunteers_limit"`
	Objectives      string `json:"objectives"`
	Opportunities   string `json:"opportunities"`
	Status          string `json:"status"`
}

// ===================== Response DTOs =====================

// EventResponse for event details
type EventResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	Date            string    `json:"date"`
	TimeStart       string    `json:"time_start"`
	TimeEnd         string    `json:"time_end"`
	CallTime        string    `json:"call_time,omitempty"`
	VolunteersLimit int       `json:"volunteers_limit"`
	Objectives      string    `json:"objectives,omitempty"`
	Opportunities   string    `json:"opportunities,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToEventResponse(event *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:              event.ID.String(),
		Title:           event.Title,
		Slug:            event.Slug,
		Date:            event.Date.Format("2006-01-02"),
		TimeStart:       event.TimeStart,
		TimeEnd:         event.TimeEnd,
		VolunteersLimit: event.VolunteersLimit,
		Status:          string(event.Status),
		CreatedAt:       event.CreatedAt,
	}
	if event.Description != nil {
		resp.Description = *event.Description
	}
	if event.Location != nil {
		resp.Location = *event.Location
	}
	if event.CallTime != nil {
		resp.CallTime = *event.CallTime
	}
	if event.Objectives != nil {
		resp.Objectives = *event.Objectives
	}
	if event.Opportunities != nil {
		resp.Opportunities = *event.Opportunities
	}
	return resp
}
