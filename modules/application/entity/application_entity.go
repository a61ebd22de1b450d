package entity

import (
	"time"

	"volunteerhub/core/entity"

	"github.com/google/uuid"
)

// ApplicationStatus tracks the review state of a volunteer application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusAdjusted ApplicationStatus = "adjusted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a volunteer's application to an event. AdjustedTimeSlot is
// set only when the reviewer approves with a changed schedule.
type Application struct {
	EventID          uuid.UUID         `db:"event_id" json:"event_id"`
	VolunteerID      uuid.UUID         `db:"volunteer_id" json:"volunteer_id"`
	NGOCode          string            `db:"ngo_code" json:"ngo_code"`
	Status           ApplicationStatus `db:"status" json:"status"`
	Message          *string           `db:"message" json:"message,omitempty"`
	AdjustedTimeSlot *string           `db:"adjusted_time_slot" json:"adjusted_time_slot,omitempty"`
	DecisionNote     *string           `db:"decision_note" json:"decision_note,omitempty"`
	DecidedAt        *time.Time        `db:"decided_at" json:"decided_at,omitempty"`
	entity.BaseEntity
}

type PaginatedApplications = entity.Pagination[Application]
