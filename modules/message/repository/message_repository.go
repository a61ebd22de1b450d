package repository

import (
	"context"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/message/entity"

	"github.com/google/uuid"
)

// MessageRepository handles message database operations
type MessageRepository struct {
	DB database.Database
}

// MessageRepositoryInterface defines the repository contract
type MessageRepositoryInterface interface {
	Create(ctx context.Context, message *entity.Message) (*entity.Message, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedMessages, error)
}

func NewMessageRepository(db database.Database) MessageRepositoryInterface {
	return &MessageRepository{DB: db}
}

const messageColumns = `
	id, event_id, sender_id, sender_name, sender_role, body, created_at, updated_at
`

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	query := `
		INSERT INTO messages (event_id, sender_id, sender_name, sender_role, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns

	var created entity.Message
	err := r.DB.GetContext(ctx, &created, query,
		message.EventID, message.SenderID, message.SenderName, message.SenderRole, message.Body)
	if err != nil {
		logger.Error("MessageRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

// ListByEvent returns messages newest first so the console shows the latest
// page immediately.
func (r *MessageRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedMessages, error) {
	baseQuery := `FROM messages WHERE event_id = $1`

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, eventID); err != nil {
		logger.Error("MessageRepository:ListByEvent:Count:Error:", err)
		return nil, err
	}

	query := `SELECT ` + messageColumns + ` ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var messages []entity.Message
	if err := r.DB.SelectContext(ctx, &messages, query, eventID, p.PageSize, p.Offset()); err != nil {
		logger.Error("MessageRepository:ListByEvent:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedMessages{
		Items:      messages,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
