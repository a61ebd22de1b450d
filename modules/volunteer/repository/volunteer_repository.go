package repository

import (
	"context"
	"database/sql"
	"fmt"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/params"
	"volunteerhub/modules/volunteer/entity"

	"github.com/google/uuid"
)

// VolunteerRepository handles volunteer database operations
type VolunteerRepository struct {
	DB database.Database
}

// VolunteerRepositoryInterface defines the repository contract
type VolunteerRepositoryInterface interface {
	Create(ctx context.Context, volunteer *entity.Volunteer) (*entity.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Volunteer, error)
	GetByEmail(ctx context.Context, ngoCode, email string) (*entity.Volunteer, error)
	ListByNGO(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedVolunteers, error)
	Update(ctx context.Context, volunteer *entity.Volunteer) error
}

func NewVolunteerRepository(db database.Database) VolunteerRepositoryInterface {
	return &VolunteerRepository{DB: db}
}

const volunteerColumns = `
	id, ngo_code, first_name, last_name, email, contact_number, location,
	days_available, time_availability, busy_hours, preferred_volunteering,
	created_at, updated_at
`

func (r *VolunteerRepository) Create(ctx context.Context, volunteer *entity.Volunteer) (*entity.Volunteer, error) {
	query := `
		INSERT INTO volunteers (ngo_code, first_name, last_name, email, contact_number,
		                        location, days_available, time_availability, busy_hours,
		                        preferred_volunteering)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + volunteerColumns

	var created entity.Volunteer
	err := r.DB.GetContext(ctx, &created, query,
		volunteer.NGOCode, volunteer.FirstName, volunteer.LastName, volunteer.Email,
		volunteer.ContactNumber, volunteer.Location, volunteer.DaysAvailable,
		volunteer.TimeAvailability, volunteer.BusyHours, volunteer.PreferredVolunteering)
	if err != nil {
		logger.Error("VolunteerRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1`

	var volunteer entity.Volunteer
	err := r.DB.GetContext(ctx, &volunteer, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("VolunteerRepository:GetByID:Error:", err)
		return nil, err
	}

	return &volunteer, nil
}

func (r *VolunteerRepository) GetByEmail(ctx context.Context, ngoCode, email string) (*entity.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE ngo_code = $1 AND email = $2`

	var volunteer entity.Volunteer
	err := r.DB.GetContext(ctx, &volunteer, query, ngoCode, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("VolunteerRepository:GetByEmail:Error:", err)
		return nil, err
	}

	return &volunteer, nil
}

func (r *VolunteerRepository) ListByNGO(ctx context.Context, ngoCode string, p params.QueryParams) (*entity.PaginatedVolunteers, error) {
	baseQuery := `FROM volunteers WHERE ngo_code = $1`
	args := []any{ngoCode}

	if p.Search != "" {
		baseQuery += ` AND (first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2)`
		args = append(args, "%"+p.Search+"%")
	}

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("VolunteerRepository:ListByNGO:Count:Error:", err)
		return nil, err
	}

	query := `SELECT ` + volunteerColumns + ` ` + baseQuery + `
		ORDER BY last_name ASC, first_name ASC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var volunteers []entity.Volunteer
	if err := r.DB.SelectContext(ctx, &volunteers, query, args...); err != nil {
		logger.Error("VolunteerRepository:ListByNGO:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedVolunteers{
		Items:      volunteers,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *VolunteerRepository) Update(ctx context.Context, volunteer *entity.Volunteer) error {
	query := `
		UPDATE volunteers
		SET first_name = $2, last_name = $3, contact_number = $4, location = $5,
		    days_available = $6, time_availability = $7, busy_hours = $8,
		    preferred_volunteering = $9, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		volunteer.ID, volunteer.FirstName, volunteer.LastName, volunteer.ContactNumber,
		volunteer.Location, volunteer.DaysAvailable, volunteer.TimeAvailability,
		volunteer.BusyHours, volunteer.PreferredVolunteering)
	if err != nil {
		logger.Error("VolunteerRepository:Update:Error:", err)
		return err
	}

	return nil
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
