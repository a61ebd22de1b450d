package repository

import (
	"context"
	"database/sql"
	"fmt"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/application/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	DB database.Database
}

// ApplicationRepositoryInterface defines the repository contract
type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, app *entity.Application) (*entity.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	GetByEventAndVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID) (*entity.Application, error)
	ListByNGO(ctx context.Context, ngoCode string, status string, eventID *uuid.UUID, p params.QueryParams) (*entity.PaginatedApplications, error)
	UpdateDecision(ctx context.Context, app *entity.Application) error
	CountByEventAndStatuses(ctx context.Context, eventID uuid.UUID, statuses []entity.ApplicationStatus) (int, error)
}

func NewApplicationRepository(db database.Database) ApplicationRepositoryInterface {
	return &ApplicationRepository{DB: db}
}

const applicationColumns = `
	id, event_id, volunteer_id, ngo_code, status, message, adjusted_time_slot,
	decision_note, decided_at, created_at, updated_at
`

func (r *ApplicationRepository) Create(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	query := `
		INSERT INTO applications (event_id, volunteer_id, ngo_code, status, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + applicationColumns

	var created entity.Application
	err := r.DB.GetContext(ctx, &created, query,
		app.EventID, app.VolunteerID, app.NGOCode, app.Status, app.Message)
	if err != nil {
		logger.Error("ApplicationRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var app entity.Application
	err := r.DB.GetContext(ctx, &app, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ApplicationRepository:GetByID:Error:", err)
		return nil, err
	}

	return &app, nil
}

func (r *ApplicationRepository) GetByEventAndVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID) (*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE event_id = $1 AND volunteer_id = $2`

	var app entity.Application
	err := r.DB.GetContext(ctx, &app, query, eventID, volunteerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ApplicationRepository:GetByEventAndVolunteer:Error:", err)
		return nil, err
	}

	return &app, nil
}

// ListByNGO returns applications oldest first so reviewers work the queue in
// arrival order.
func (r *ApplicationRepository) ListByNGO(ctx context.Context, ngoCode string, status string, eventID *uuid.UUID, p params.QueryParams) (*entity.PaginatedApplications, error) {
	baseQuery := `FROM applications WHERE ngo_code = $1`
	args := []any{ngoCode}

	if status != "" {
		baseQuery += ` AND status = ` + placeholder(len(args)+1)
		args = append(args, status)
	}
	if eventID != nil {
		baseQuery += ` AND event_id = ` + placeholder(len(args)+1)
		args = append(args, *eventID)
	}

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("ApplicationRepository:ListByNGO:Count:Error:", err)
		return nil, err
	}

	query := `SELECT ` + applicationColumns + ` ` + baseQuery + `
		ORDER BY created_at ASC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var apps []entity.Application
	if err := r.DB.SelectContext(ctx, &apps, query, args...); err != nil {
		logger.Error("ApplicationRepository:ListByNGO:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedApplications{
		Items:      apps,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *ApplicationRepository) UpdateDecision(ctx context.Context, app *entity.Application) error {
	query := `
		UPDATE applications
		SET status = $2, adjusted_time_slot = $3, decision_note = $4,
		    decided_at = $5, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		app.ID, app.Status, app.AdjustedTimeSlot, app.DecisionNote, app.DecidedAt)
	if err != nil {
		logger.Error("ApplicationRepository:UpdateDecision:Error:", err)
		return err
	}

	return nil
}

func (r *ApplicationRepository) CountByEventAndStatuses(ctx context.Context, eventID uuid.UUID, statuses []entity.ApplicationStatus) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE event_id = $1 AND status = ANY($2)`

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	var count int
	if err := r.DB.GetContext(ctx, &count, query, eventID, pq.Array(names)); err != nil {
		logger.Error("ApplicationRepository:CountByEventAndStatuses:Error:", err)
		return 0, err
	}
	return count, nil
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
