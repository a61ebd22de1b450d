package dto

import (
	"time"

	"volunteerhub/modules/volunteer/entity"
)

// ===================== Request DTOs =====================

// CreateVolunteerRequest registers a volunteer into the NGO's registry
type CreateVolunteerRequest struct {
	FirstName             string `json:"first_name" validate:"required"`
	LastName              string `json:"last_name" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	ContactNumber         string `json:"contact_number"`
	Location              string `json:"location"`
	DaysAvailable         string `json:"days_available"`
	TimeAvailability      string `json:"time_availability"`
	BusyHours             string `json:"busy_hours"`
	PreferredVolunteering string `json:"preferred_volunteering"`
}

// UpdateVolunteerRequest updates contact and availability details
type UpdateVolunteerRequest struct {
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	ContactNumber         string `json:"contact_number"`
	Location              string `json:"location"`
	DaysAvailable         string `json:"days_available"`
	TimeAvailability      string `json:"time_availability"`
	BusyHours             string `json:"busy_hours"`
	PreferredVolunteering string `json:"preferred_volunteering"`
}

// ===================== Response DTOs =====================

// VolunteerResponse for volunteer details
type VolunteerResponse struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	ContactNumber         string    `json:"contact_number,omitempty"`
	Location              string    `json:"location,omitempty"`
	DaysAvailable         string    `json:"days_available,omitempty"`
	TimeAvailability      string    `json:"time_availability,omitempty"`
	BusyHours             string    `json:"busy_hours,omitempty"`
	PreferredVolunteering string    `json:"preferred_volunteering,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

func ToVolunteerResponse(v *entity.Volunteer) *VolunteerResponse {
	resp := &VolunteerResponse{
		ID:        v.ID.String(),
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
	if v.ContactNumber != nil {
		resp.ContactNumber = *v.ContactNumber
	}
	if v.Location != nil {
		resp.Location = *v.Location
	}
	if v.DaysAvailable != nil {
		resp.DaysAvailable = *v.DaysAvailable
	}
	if v.TimeAvailability != nil {
		resp.TimeAvailability = *v.TimeAvailability
	}
	if v.BusyHours != nil {
		resp.BusyHours = *v.BusyHours
	}
	if v.PreferredVolunteering != nil {
		resp.PreferredVolunteering = *v.PreferredVolunteering
	}
	return resp
}
