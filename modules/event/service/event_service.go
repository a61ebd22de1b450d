package service

import (
	"context"
	"time"

	"volunteerhub/core/errors"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/event/dto"
	"volunteerhub/modules/event/entity"
	"volunteerhub/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventService handles event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	Create(ctx context.Context, adminID uuid.UUID, ngoCode string, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetBySlug(ctx context.Context, slug string) (*dto.EventResponse, *errors.AppError)
	List(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedEvents, *errors.AppError)
	Update(ctx context.Context, eventID uuid.UUID, ngoCode string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, eventID uuid.UUID, ngoCode string) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// Create validates and persists a new event.
func (s *EventService) Create(ctx context.Context, adminID uuid.UUID, ngoCode string, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}

	event := &entity.Event{
		AdminID:         adminID,
		NGOCode:         ngoCode,
		Title:           req.Title,
		Slug:            slug.Make(req.Title) + "-" + utils.GenerateID(),
		Date:            date,
		TimeStart:       req.TimeStart,
		TimeEnd:         req.TimeEnd,
		VolunteersLimit: req.VolunteersLimit,
		Status:          entity.EventStatusPublished,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.CallTime != "" {
		event.CallTime = &req.CallTime
	}
	if req.Objectives != "" {
		event.Objectives = &req.Objectives
	}
	if req.Opportunities != "" {
		event.Opportunities = &req.Opportunities
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

// GetByID retrieves an event by ID.
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(event), nil
}

// GetBySlug retrieves an event by its URL slug.
func (s *EventService) GetBySlug(ctx context.Context, eventSlug string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(event), nil
}

// List returns the NGO's events, newest first.
func (s *EventService) List(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedEvents, *errors.AppError) {
	result, err := s.repo.ListByNGO(ctx, ngoCode, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}
	return result, nil
}

// Update applies the changed fields of an event owned by the caller's NGO.
func (s *EventService) Update(ctx context.Context, eventID uuid.UUID, ngoCode string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrForbidden, "Event belongs to another NGO", nil)
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Location != "" {
		event.Location = &req.Location
	}
	if req.Date != "" {
		date, parseErr := time.Parse("2006-01-02", req.Date)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", parseErr)
		}
		event.Date = date
	}
	if req.TimeStart != "" {
		event.TimeStart = req.TimeStart
	}
	if req.TimeEnd != "" {
		event.TimeEnd = req.TimeEnd
	}
	if req.CallTime != "" {
		event.CallTime = &req.CallTime
	}
	if req.VolunteersLimit > 0 {
		event.VolunteersLimit = req.VolunteersLimit
	}
	if req.Objectives != "" {
		event.Objectives = &req.Objectives
	}
	if req.Opportunities != "" {
		event.Opportunities = &req.Opportunities
	}
	if req.Status != "" {
		switch entity.EventStatus(req.Status) {
		case entity.EventStatusDraft, entity.EventStatusPublished, entity.EventStatusOngoing,
			entity.EventStatusCompleted, entity.EventStatusCancelled:
			event.Status = entity.EventStatus(req.Status)
		default:
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event status", nil)
		}
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}

// Delete removes an event owned by the caller's NGO.
func (s *EventService) Delete(ctx context.Context, eventID uuid.UUID, ngoCode string) *errors.AppError {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.NGOCode != ngoCode {
		return errors.NewAppError(errors.ErrForbidden, "Event belongs to another NGO", nil)
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	return nil
}
