package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/core/constants"
	"volunteerhub/core/errors"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/application/dto"
	"volunteerhub/modules/application/entity"
	"volunteerhub/modules/application/repository"
	eventDto "volunteerhub/modules/event/dto"
	eventEntity "volunteerhub/modules/event/entity"
	eventRepo "volunteerhub/modules/event/repository"
	notificationDto "volunteerhub/modules/notification/dto"
	notificationService "volunteerhub/modules/notification/service"
	"volunteerhub/modules/notification/tasks"
	suggestionDto "volunteerhub/modules/suggestion/dto"
	suggestionService "volunteerhub/modules/suggestion/service"
	volunteerDto "volunteerhub/modules/volunteer/dto"
	volunteerEntity "volunteerhub/modules/volunteer/entity"
	volunteerRepo "volunteerhub/modules/volunteer/repository"

	"github.com/google/uuid"
)

// ApplicationService handles the application review workflow
type ApplicationService struct {
	repo          repository.ApplicationRepositoryInterface
	volunteers    volunteerRepo.VolunteerRepositoryInterface
	events        eventRepo.EventRepositoryInterface
	suggestions   suggestionService.SuggestionServiceInterface
	notifications *notificationService.NotificationService
	taskClient    *tasks.Client
}

// ApplicationServiceInterface defines the service contract
type ApplicationServiceInterface interface {
	Apply(ctx context.Context, ngoCode string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, *errors.AppError)
	List(ctx context.Context, ngoCode string, status string, eventID *uuid.UUID, p params.QueryParams) (*entity.PaginatedApplications, *errors.AppError)
	GetReview(ctx context.Context, id uuid.UUID, ngoCode string) (*dto.ReviewResponse, *errors.AppError)
	Decide(ctx context.Context, id uuid.UUID, adminID uuid.UUID, ngoCode string, req *dto.DecideRequest) (*dto.ApplicationResponse, *errors.AppError)
}

func NewApplicationService(
	repo repository.ApplicationRepositoryInterface,
	volunteers volunteerRepo.VolunteerRepositoryInterface,
	events eventRepo.EventRepositoryInterface,
	suggestions suggestionService.SuggestionServiceInterface,
	notifications *notificationService.NotificationService,
	taskClient *tasks.Client,
) ApplicationServiceInterface {
	return &ApplicationService{
		repo:          repo,
		volunteers:    volunteers,
		events:        events,
		suggestions:   suggestions,
		notifications: notifications,
		taskClient:    taskClient,
	}
}

// Apply records a volunteer's application to an event as pending.
func (s *ApplicationService) Apply(ctx context.Context, ngoCode string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, *errors.AppError) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
	}
	volunteerID, err := uuid.Parse(req.VolunteerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid volunteer ID", err)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil || event.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	volunteer, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get volunteer", err)
	}
	if volunteer == nil || volunteer.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Volunteer not found", nil)
	}

	existing, err := s.repo.GetByEventAndVolunteer(ctx, eventID, volunteerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing application", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Volunteer has already applied to this event", nil)
	}

	taken, err := s.repo.CountByEventAndStatuses(ctx, eventID,
		[]entity.ApplicationStatus{entity.ApplicationStatusApproved, entity.ApplicationStatusAdjusted})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check event capacity", err)
	}
	if taken >= event.VolunteersLimit {
		return nil, errors.NewAppError(errors.ErrEventFull, "Event has reached its volunteer limit", nil)
	}

	app := &entity.Application{
		EventID:     eventID,
		VolunteerID: volunteerID,
		NGOCode:     ngoCode,
		Status:      entity.ApplicationStatusPending,
	}
	if req.Message != "" {
		app.Message = &req.Message
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create application", err)
	}

	return dto.ToApplicationResponse(created), nil
}

// List returns the NGO's applications, oldest first. Status and event
// filters are optional.
func (s *ApplicationService) List(ctx context.Context, ngoCode string, status string, eventID *uuid.UUID, p params.QueryParams) (*entity.PaginatedApplications, *errors.AppError) {
	result, err := s.repo.ListByNGO(ctx, ngoCode, status, eventID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list applications", err)
	}
	return result, nil
}

// GetReview assembles the review screen payload: application, applicant,
// event and an advisory scheduling suggestion. The suggestion never fails;
// a degraded zero-score result is returned when availability data is
// missing or malformed.
func (s *ApplicationService) GetReview(ctx context.Context, id uuid.UUID, ngoCode string) (*dto.ReviewResponse, *errors.AppError) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get application", err)
	}
	if app == nil || app.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Application not found", nil)
	}

	volunteer, err := s.volunteers.GetByID(ctx, app.VolunteerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get volunteer", err)
	}
	if volunteer == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Volunteer not found", nil)
	}

	event, err := s.events.GetByID(ctx, app.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	suggestion := s.suggestions.GetSuggestion(ctx,
		volunteerToSuggestionData(volunteer), eventToSuggestionData(event))

	return &dto.ReviewResponse{
		Application: dto.ToApplicationResponse(app),
		Volunteer:   volunteerDto.ToVolunteerResponse(volunteer),
		Event:       eventDto.ToEventResponse(event),
		Suggestion:  suggestion,
	}, nil
}

// Decide resolves a pending application, records the outcome, notifies the
// event's admin and queues a decision email to the volunteer.
func (s *ApplicationService) Decide(ctx context.Context, id uuid.UUID, adminID uuid.UUID, ngoCode string, req *dto.DecideRequest) (*dto.ApplicationResponse, *errors.AppError) {
	switch req.Decision {
	case constants.DecisionApproved, constants.DecisionAdjusted, constants.DecisionRejected:
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "decision must be approved, adjusted or rejected", nil)
	}
	if req.Decision == constants.DecisionAdjusted && req.AdjustedTimeSlot == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "adjusted_time_slot is required for an adjusted decision", nil)
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get application", err)
	}
	if app == nil || app.NGOCode != ngoCode {
		return nil, errors.NewAppError(errors.ErrNotFound, "Application not found", nil)
	}
	if app.Status != entity.ApplicationStatusPending {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Application has already been reviewed", nil)
	}

	event, err := s.events.GetByID(ctx, app.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Decision == constants.DecisionApproved || req.Decision == constants.DecisionAdjusted {
		taken, countErr := s.repo.CountByEventAndStatuses(ctx, app.EventID,
			[]entity.ApplicationStatus{entity.ApplicationStatusApproved, entity.ApplicationStatusAdjusted})
		if countErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check event capacity", countErr)
		}
		if taken >= event.VolunteersLimit {
			return nil, errors.NewAppError(errors.ErrEventFull, "Event has reached its volunteer limit", nil)
		}
	}

	now := time.Now()
	app.Status = entity.ApplicationStatus(req.Decision)
	app.DecidedAt = &now
	if req.AdjustedTimeSlot != "" {
		app.AdjustedTimeSlot = &req.AdjustedTimeSlot
	}
	if req.Note != "" {
		app.DecisionNote = &req.Note
	}

	if err := s.repo.UpdateDecision(ctx, app); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save decision", err)
	}

	s.notifyDecision(ctx, app, event, adminID)

	return dto.ToApplicationResponse(app), nil
}

// notifyDecision fans out the decision. Failures are logged, not returned:
// the decision is already persisted.
func (s *ApplicationService) notifyDecision(ctx context.Context, app *entity.Application, event *eventEntity.Event, adminID uuid.UUID) {
	notifErr := s.notifications.Create(ctx, &notificationDto.CreateNotificationRequest{
		AdminID: adminID,
		Title:   "Application " + string(app.Status),
		Message: fmt.Sprintf("An application for %q was %s.", event.Title, app.Status),
		Type:    "application_decision",
		Data: map[string]interface{}{
			"application_id": app.ID.String(),
			"event_id":       app.EventID.String(),
			"status":         string(app.Status),
		},
	})
	if notifErr != nil {
		logger.Error("ApplicationService:notifyDecision:Notification:Error:", notifErr)
	}

	volunteer, err := s.volunteers.GetByID(ctx, app.VolunteerID)
	if err != nil || volunteer == nil {
		logger.Error("ApplicationService:notifyDecision:Volunteer:Error:", err)
		return
	}

	if s.taskClient == nil {
		return
	}
	emailErr := s.taskClient.EnqueueEmail(ctx, tasks.EmailPayload{
		To:       []string{volunteer.Email},
		Subject:  fmt.Sprintf("Your application for %s", event.Title),
		Template: tasks.TemplateDecisionEmail,
		Data:     decisionEmailData(volunteer, event, app),
	})
	if emailErr != nil {
		logger.Error("ApplicationService:notifyDecision:Email:Error:", emailErr)
	}
}

// decisionEmailData fills the decision email template. An empty TimeSlot
// suppresses the slot line, so rejections never advertise one.
func decisionEmailData(volunteer *volunteerEntity.Volunteer, event *eventEntity.Event, app *entity.Application) utils.TemplateData {
	timeSlot := event.TimeStart + " - " + event.TimeEnd
	if app.AdjustedTimeSlot != nil {
		timeSlot = *app.AdjustedTimeSlot
	}
	if app.Status == entity.ApplicationStatusRejected {
		timeSlot = ""
	}

	note := ""
	if app.DecisionNote != nil {
		note = *app.DecisionNote
	}

	return utils.TemplateData{
		RecipientName: volunteer.FirstName,
		EventTitle:    event.Title,
		EventDate:     event.Date.Format("January 2, 2006"),
		TimeSlot:      timeSlot,
		Decision:      string(app.Status),
		Note:          note,
	}
}

func volunteerToSuggestionData(v *volunteerEntity.Volunteer) suggestionDto.VolunteerData {
	return suggestionDto.VolunteerData{
		Firstname:             v.FirstName,
		Lastname:              v.LastName,
		DaysAvailable:         deref(v.DaysAvailable),
		TimeAvailability:      deref(v.TimeAvailability),
		BusyHours:             deref(v.BusyHours),
		PreferredVolunteering: deref(v.PreferredVolunteering),
		Location:              deref(v.Location),
	}
}

func eventToSuggestionData(e *eventEntity.Event) suggestionDto.EventData {
	return suggestionDto.EventData{
		EventID:                e.ID.String(),
		EventTitle:             e.Title,
		Date:                   e.Date.Format("2006-01-02"),
		TimeStart:              e.TimeStart,
		TimeEnd:                e.TimeEnd,
		CallTime:               deref(e.CallTime),
		VolunteersLimit:        e.VolunteersLimit,
		EventObjectives:        deref(e.Objectives),
		Description:            deref(e.Description),
		Location:               deref(e.Location),
		VolunteerOpportunities: deref(e.Opportunities),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
