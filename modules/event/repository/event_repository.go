package repository

import (
	"context"
	"database/sql"
	"fmt"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Event, error)
	ListByNGO(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedEvents, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewEventRepository(db database.Database) EventRepositoryInterface {
	return &EventRepository{DB: db}
}

const eventColumns = `
	id, admin_id, ngo_code, title, slug, description, location, date,
	time_start, time_end, call_time, volunteers_limit, objectives,
	opportunities, status, created_at, updated_at
`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (admin_id, ngo_code, title, slug, description, location, date,
		                    time_start, time_end, call_time, volunteers_limit, objectives,
		                    opportunities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.AdminID, event.NGOCode, event.Title, event.Slug, event.Description,
		event.Location, event.Date, event.TimeStart, event.TimeEnd, event.CallTime,
		event.VolunteersLimit, event.Objectives, event.Opportunities, event.Status)
	if err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetBySlug:Error:", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) ListByNGO(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedEvents, error) {
	baseQuery := `FROM events WHERE ngo_code = $1`
	args := []any{ngoCode}

	if p.Search != "" {
		baseQuery += ` AND title ILIKE $2`
		args = append(args, "%"+p.Search+"%")
	}

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("EventRepository:ListByNGO:Count:Error:", err)
		return nil, err
	}

	query := `SELECT ` + eventColumns + ` ` + baseQuery + `
		ORDER BY date DESC, created_at DESC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:ListByNGO:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedEvents{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, date = $5, time_start = $6,
		    time_end = $7, call_time = $8, volunteers_limit = $9, objectives = $10,
		    opportunities = $11, status = $12, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.Location, event.Date,
		event.TimeStart, event.TimeEnd, event.CallTime, event.VolunteersLimit,
		event.Objectives, event.Opportunities, event.Status)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// placeholder renders a positional Postgres parameter like "$3".
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
