package dto

import (
	"time"

	"volunteerhub/modules/message/entity"
)

// SendMessageRequest posts a chat message into an event's conversation
type SendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// MessageResponse is the wire shape of a chat message, both in history
// responses and on the live stream.
type MessageResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToMessageResponse(m *entity.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID.String(),
		EventID:    m.EventID.String(),
		SenderID:   m.SenderID.String(),
		SenderName: m.SenderName,
		SenderRole: m.SenderRole,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}
