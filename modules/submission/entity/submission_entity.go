package entity

import (
	"volunteerhub/core/entity"

	"github.com/google/uuid"
)

// SubmissionStatus tracks the review state of an uploaded submission
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission is a task or photo submission uploaded for an event. FileKey is
// the object storage key; FileURL is the public URL served to clients.
type Submission struct {
	EventID     uuid.UUID        `db:"event_id" json:"event_id"`
	VolunteerID uuid.UUID        `db:"volunteer_id" json:"volunteer_id"`
	NGOCode     string           `db:"ngo_code" json:"ngo_code"`
	Caption     *string          `db:"caption" json:"caption,omitempty"`
	FileURL     string           `db:"file_url" json:"file_url"`
	FileKey     string           `db:"file_key" json:"file_key"`
	ContentType string           `db:"content_type" json:"content_type"`
	Status      SubmissionStatus `db:"status" json:"status"`
	ReviewNote  *string          `db:"review_note" json:"review_note,omitempty"`
	entity.BaseEntity
}

type PaginatedSubmissions = entity.Pagination[Submission]
