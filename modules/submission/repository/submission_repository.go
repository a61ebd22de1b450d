package repository

import (
	"context"
	"database/sql"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/submission/entity"

	"github.com/google/uuid"
)

// SubmissionRepository handles submission database operations
type SubmissionRepository struct {
	DB database.Database
}

// SubmissionRepositoryInterface defines the repository contract
type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *entity.Submission) (*entity.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedSubmissions, error)
	UpdateStatus(ctx context.Context, submission *entity.Submission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewSubmissionRepository(db database.Database) SubmissionRepositoryInterface {
	return &SubmissionRepository{DB: db}
}

const submissionColumns = `
	id, event_id, volunteer_id, ngo_code, caption, file_url, file_key,
	content_type, status, review_note, created_at, updated_at
`

func (r *SubmissionRepository) Create(ctx context.Context, submission *entity.Submission) (*entity.Submission, error) {
	query := `
		INSERT INTO submissions (event_id, volunteer_id, ngo_code, caption, file_url,
		                         file_key, content_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + submissionColumns

	var created entity.Submission
	err := r.DB.GetContext(ctx, &created, query,
		submission.EventID, submission.VolunteerID, submission.NGOCode, submission.Caption,
		submission.FileURL, submission.FileKey, submission.ContentType, submission.Status)
	if err != nil {
		logger.Error("SubmissionRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	var submission entity.Submission
	err := r.DB.GetContext(ctx, &submission, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SubmissionRepository:GetByID:Error:", err)
		return nil, err
	}

	return &submission, nil
}

func (r *SubmissionRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedSubmissions, error) {
	baseQuery := `FROM submissions WHERE event_id = $1`

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, eventID); err != nil {
		logger.Error("SubmissionRepository:ListByEvent:Count:Error:", err)
		return nil, err
	}

	query := `SELECT ` + submissionColumns + ` ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var submissions []entity.Submission
	if err := r.DB.SelectContext(ctx, &submissions, query, eventID, p.PageSize, p.Offset()); err != nil {
		logger.Error("SubmissionRepository:ListByEvent:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedSubmissions{
		Items:      submissions,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, submission *entity.Submission) error {
	query := `
		UPDATE submissions
		SET status = $2, review_note = $3, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query, submission.ID, submission.Status, submission.ReviewNote)
	if err != nil {
		logger.Error("SubmissionRepository:UpdateStatus:Error:", err)
		return err
	}

	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM submissions WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("SubmissionRepository:Delete:Error:", err)
		return err
	}
	return nil
}
