package service

import (
	"context"
	"encoding/json"

	"volunteerhub/core/cache"
	"volunteerhub/core/errors"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/message/dto"
	"volunteerhub/modules/message/entity"
	"volunteerhub/modules/message/repository"
	eventRepo "volunteerhub/modules/event/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MessageService handles event chat business logic
type MessageService struct {
	repo   repository.MessageRepositoryInterface
	events eventRepo.EventRepositoryInterface
	cache  cache.Cache
}

// MessageServiceInterface defines the service contract
type MessageServiceInterface interface {
	Send(ctx context.Context, eventID uuid.UUID, senderID uuid.UUID, senderName, ngoCode, body string) (*dto.MessageResponse, *errors.AppError)
	History(ctx context.Context, eventID uuid.UUID, ngoCode string, p params.QueryParams) (*entity.PaginatedMessages, *errors.AppError)
	Subscribe(ctx context.Context, eventID uuid.UUID, ngoCode string) (*redis.PubSub, *errors.AppError)
}

func NewMessageService(repo repository.MessageRepositoryInterface, events eventRepo.EventRepositoryInterface, c cache.Cache) MessageServiceInterface {
	return &MessageService{repo: repo, events: events, cache: c}
}

// Send persists a chat message and publishes it on the event's channel.
// A publish failure does not fail the send; the message is already stored
// and will appear in history.
func (s *MessageService) Send(ctx context.Context, eventID uuid.UUID, senderID uuid.UUID, senderName, ngoCode, body string) (*dto.MessageResponse, *errors.AppError) {
	if appErr := s.checkEvent(ctx, eventID, ngoCode); appErr != nil {
		return nil, appErr
	}

	message := &entity.Message{
		EventID:    eventID,
		SenderID:   senderID,
		SenderName: senderName,
		SenderRole: "admin",
		Body:       body,
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save message", err)
	}

	resp := dto.ToMessageResponse(created)
	payload, err := json.Marshal(resp)
	if err == nil {
		err = s.cache.PublishEventMessage(ctx, eventID.String(), payload)
	}
	if err != nil {
		logger.Error("MessageService:Send:Publish:Error:", err)
	}

	return resp, nil
}

// History returns the event's messages, newest first.
func (s *MessageService) History(ctx context.Context, eventID uuid.UUID, ngoCode string, p params.QueryParams) (*entity.PaginatedMessages, *errors.AppError) {
	if appErr := s.checkEvent(ctx, eventID, ngoCode); appErr != nil {
		return nil, appErr
	}

	result, err := s.repo.ListByEvent(ctx, eventID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list messages", err)
	}
	return result, nil
}

// Subscribe opens a live subscription on the event's channel. The caller
// owns the returned PubSub and must close it.
func (s *MessageService) Subscribe(ctx context.Context, eventID uuid.UUID, ngoCode string) (*redis.PubSub, *errors.AppError) {
	if appErr := s.checkEvent(ctx, eventID, ngoCode); appErr != nil {
		return nil, appErr
	}

	return s.cache.SubscribeEventMessages(ctx, eventID.String()), nil
}

func (s *MessageService) checkEvent(ctx context.Context, eventID uuid.UUID, ngoCode string) *errors.AppError {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil || event.NGOCode != ngoCode {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}
