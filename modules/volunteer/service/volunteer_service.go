package service

import (
	"context"

	"volunteerhub/core/errors"
	"volunteerhub/core/params"
	"volunteerhub/modules/volunteer/dto"
	"volunteerhub/modules/volunteer/entity"
	"volunteerhub/modules/volunteer/repository"

	"github.com/google/uuid"
)

// VolunteerService handles volunteer business logic
type VolunteerService struct {
	repo repository.VolunteerRepositoryInterface
}

// VolunteerServiceInterface defines the service contract
type VolunteerServiceInterface interface {
	Create(ctx context.Context, ngoCode string, req *dto.CreateVolunteerRequest) (*dto.VolunteerResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID, ngoCode string) (*dto.VolunteerResponse, *errors.AppError)
	List(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedVolunteers, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, ngoCode string, req *dto.UpdateVolunteerRequest) (*dto.VolunteerResponse, *errors.AppError)
}

func NewVolunteerService(repo repository.VolunteerRepositoryInterface) VolunteerServiceInterface {
	return &VolunteerService{repo: repo}
}

// Create registers a volunteer in the caller's NGO registry. Email is unique
// per NGO.
func (s *VolunteerService) Create(ctx context.Context, ngoCode string, req *dto.CreateVolunteerRequest) (*dto.VolunteerResponse, *errors.AppError) {
	existing, err := s.repo.GetByEmail(ctx, ngoCode, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check volunteer email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Volunteer with this email already exists", nil)
	}

	volunteer := &entity.Volunteer{
		NGOCode:   ngoCode,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	setOptional(&volunteer.ContactNumber, req.ContactNumber)
	setOptional(&volunteer.Location, req.Location)
	setOptional(&volunteer.DaysAvailable, req.DaysAvailable)
	setOptional(&volunteer.TimeAvailability, req.TimeAvailability)
	setOptional(&volunteer.BusyHours, req.BusyHours)
	setOptional(&volunteer.PreferredVolunteering, req.PreferredVolunteering)

	created, err := s.repo.Create(ctx, volunteer)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create volunteer", err)
	}

	return dto.ToVolunteerResponse(created), nil
}

// GetByID retrieves a volunteer visible to the caller's NGO.
func (s *VolunteerService) GetByID(ctx context.Context, id uuid.UUID, ngoCode string) (*dto.VolunteerResponse, *errors.AppError) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get volunteer", err)
	}
	if volunteer == nil || volunteer.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Volunteer not found", nil)
	}

	return dto.ToVolunteerResponse(volunteer), nil
}

// List returns the NGO's volunteers ordered by name.
func (s *VolunteerService) List(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedVolunteers, *errors.AppError) {
	result, err := s.repo.ListByNGO(ctx, ngoCode, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list volunteers", err)
	}
	return result, nil
}

// Update applies changed contact and availability details.
func (s *VolunteerService) Update(ctx context.Context, id uuid.UUID, ngoCode string, req *dto.UpdateVolunteerRequest) (*dto.VolunteerResponse, *errors.AppError) {
	volunteer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get volunteer", err)
	}
	if volunteer == nil || volunteer.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Volunteer not found", nil)
	}

	if req.FirstName != "" {
		volunteer.FirstName = req.FirstName
	}
	if req.LastName != "" {
		volunteer.LastName = req.LastName
	}
	setOptional(&volunteer.ContactNumber, req.ContactNumber)
	setOptional(&volunteer.Location, req.Location)
	setOptional(&volunteer.DaysAvailable, req.DaysAvailable)
	setOptional(&volunteer.TimeAvailability, req.TimeAvailability)
	setOptional(&volunteer.BusyHours, req.BusyHours)
	setOptional(&volunteer.PreferredVolunteering, req.PreferredVolunteering)

	if err := s.repo.Update(ctx, volunteer); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update volunteer", err)
	}

	return dto.ToVolunteerResponse(volunteer), nil
}

func setOptional(dst **string, value string) {
	if value != "" {
		*dst = &value
	}
}
