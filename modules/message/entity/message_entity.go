package entity

import (
	"volunteerhub/core/entity"

	"github.com/google/uuid"
)

// Message is a single chat message in an event's conversation.
type Message struct {
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	SenderID   uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderName string    `db:"sender_name" json:"sender_name"`
	SenderRole string    `db:"sender_role" json:"sender_role"` // admin or volunteer
	Body       string    `db:"body" json:"body"`
	entity.BaseEntity
}

type PaginatedMessages = entity.Pagination[Message]
