package entity

import (
	"time"

	"volunteerhub/core/entity"

	"github.com/google/uuid"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is a volunteering event owned by an NGO
type Event struct {
	AdminID         uuid.UUID   `db:"admin_id" json:"admin_id"`
	NGOCode         string      `db:"ngo_code" json:"ngo_code"`
	Title           string      `db:"title" json:"title"`
	Slug            string      `db:"slug" json:"slug"`
	Description     *string     `db:"description" json:"description,omitempty"`
	Location        *string     `db:"location" json:"location,omitempty"`
	Date            time.Time   `db:"date" json:"date"`
	TimeStart       string      `db:"time_start" json:"time_start"` // "H:MM AM/PM"
	TimeEnd         string      `db:"time_end" json:"time_end"`
	CallTime        *string     `db:"call_time" json:"call_time,omitempty"`
	VolunteersLimit int         `db:"volunteers_limit" json:"volunteers_limit"`
	Objectives      *string     `db:"objectives" json:"objectives,omitempty"`
	Opportunities   *string     `db:"opportunities" json:"opportunities,omitempty"`
	Status          EventStatus `db:"status" json:"status"`
	entity.BaseEntity
}

type PaginatedEvents = entity.Pagination[Event]
