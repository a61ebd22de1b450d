package entity

import (
	"volunteerhub/core/entity"
)

// Volunteer is a registered volunteer visible to an NGO. Availability fields
// are free-text as captured on the signup form, e.g. time_availability
// "9:00 AM - 5:00 PM" and preferred_volunteering "Education, Animal Welfare".
type Volunteer struct {
	NGOCode               string  `db:"ngo_code" json:"ngo_code"`
	FirstName             string  `db:"first_name" json:"first_name"`
	LastName              string  `db:"last_name" json:"last_name"`
	Email                 string  `db:"email" json:"email"`
	ContactNumber         *string `db:"contact_number" json:"contact_number,omitempty"`
	Location              *string `db:"location" json:"location,omitempty"`
	DaysAvailable         *string `db:"days_available" json:"days_available,omitempty"`
	TimeAvailability      *string `db:"time_availability" json:"time_availability,omitempty"`
	BusyHours             *string `db:"busy_hours" json:"busy_hours,omitempty"`
	PreferredVolunteering *string `db:"preferred_volunteering" json:"preferred_volunteering,omitempty"`
	entity.BaseEntity
}

type PaginatedVolunteers = entity.Pagination[Volunteer]
