package dto

import (
	"time"

	"volunteerhub/modules/submission/entity"
)

// ReviewSubmissionRequest resolves a submission's review status
type ReviewSubmissionRequest struct {
	Status string `json:"status" validate:"required"` // approved or rejected
	Note   string `json:"note"`
}

// SubmissionResponse for submission details
type SubmissionResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	VolunteerID string    `json:"volunteer_id"`
	Caption     string    `json:"caption,omitempty"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	ReviewNote  string    `json:"review_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToSubmissionResponse(s *entity.Submission) *SubmissionResponse {
	resp := &SubmissionResponse{
		ID:          s.ID.String(),
		EventID:     s.EventID.String(),
		VolunteerID: s.VolunteerID.String(),
		FileURL:     s.FileURL,
		ContentType: s.ContentType,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
	if s.Caption != nil {
		resp.Caption = *s.Caption
	}
	if s.ReviewNote != nil {
		resp.ReviewNote = *s.ReviewNote
	}
	return resp
}
