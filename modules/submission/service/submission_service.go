package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"volunteerhub/core/errors"
	"volunteerhub/core/params"
	"volunteerhub/core/storage"
	"volunteerhub/core/utils"
	eventRepo "volunteerhub/modules/event/repository"
	"volunteerhub/modules/submission/dto"
	"volunteerhub/modules/submission/entity"
	"volunteerhub/modules/submission/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SubmissionService handles submission business logic
type SubmissionService struct {
	repo   repository.SubmissionRepositoryInterface
	events eventRepo.EventRepositoryInterface
	store  storage.Storage
}

// SubmissionServiceInterface defines the service contract
type SubmissionServiceInterface interface {
	Upload(ctx context.Context, ngoCode string, eventID, volunteerID uuid.UUID, caption, filename, contentType string, body io.Reader) (*dto.SubmissionResponse, *errors.AppError)
	ListByEvent(ctx context.Context, eventID uuid.UUID, ngoCode string, p params.QueryParams) (*entity.PaginatedSubmissions, *errors.AppError)
	Review(ctx context.Context, id uuid.UUID, ngoCode string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID, ngoCode string) *errors.AppError
}

func NewSubmissionService(repo repository.SubmissionRepositoryInterface, events eventRepo.EventRepositoryInterface, store storage.Storage) SubmissionServiceInterface {
	return &SubmissionService{repo: repo, events: events, store: store}
}

// Upload stores the file in object storage and records the submission. When
// storage is not configured uploads are rejected outright.
func (s *SubmissionService) Upload(ctx context.Context, ngoCode string, eventID, volunteerID uuid.UUID, caption, filename, contentType string, body io.Reader) (*dto.SubmissionResponse, *errors.AppError) {
	if s.store == nil {
		return nil, errors.NewAppError(errors.ErrUploadFailed, "File storage is not configured", nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil || event.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	key := submissionKey(eventID, filename)
	url, err := s.store.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUploadFailed, "Failed to upload file", err)
	}

	submission := &entity.Submission{
		EventID:     eventID,
		VolunteerID: volunteerID,
		NGOCode:     ngoCode,
		FileURL:     url,
		FileKey:     key,
		ContentType: contentType,
		Status:      entity.SubmissionStatusPending,
	}
	if caption != "" {
		submission.Caption = &caption
	}

	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save submission", err)
	}

	return dto.ToSubmissionResponse(created), nil
}

// ListByEvent returns the event's submissions, newest first.
func (s *SubmissionService) ListByEvent(ctx context.Context, eventID uuid.UUID, ngoCode string, p params.QueryParams) (*entity.PaginatedSubmissions, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil || event.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	result, err := s.repo.ListByEvent(ctx, eventID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list submissions", err)
	}
	return result, nil
}

// Review marks a submission approved or rejected.
func (s *SubmissionService) Review(ctx context.Context, id uuid.UUID, ngoCode string, req *dto.ReviewSubmissionRequest) (*dto.SubmissionResponse, *errors.AppError) {
	status := entity.SubmissionStatus(req.Status)
	if status != entity.SubmissionStatusApproved && status != entity.SubmissionStatusRejected {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "status must be approved or rejected", nil)
	}

	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get submission", err)
	}
	if submission == nil || submission.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Submission not found", nil)
	}

	submission.Status = status
	if req.Note != "" {
		submission.ReviewNote = &req.Note
	}

	if err := s.repo.UpdateStatus(ctx, submission); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update submission", err)
	}

	return dto.ToSubmissionResponse(submission), nil
}

// Delete removes the submission row and its stored file.
func (s *SubmissionService) Delete(ctx context.Context, id uuid.UUID, ngoCode string) *errors.AppError {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get submission", err)
	}
	if submission == nil || submission.NGOCode != ngoCode {
		return errors.NewAppError(errors.ErrNotFound, "Submission not found", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete submission", err)
	}

	if s.store != nil {
		// Row is gone either way; an orphaned object is acceptable.
		_ = s.store.Delete(ctx, submission.FileKey)
	}

	return nil
}

// submissionKey builds a collision-free object key with a slugged filename.
func submissionKey(eventID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("submissions/%s/%s-%s%s", eventID, utils.GenerateID(), slug.Make(base), ext)
}
