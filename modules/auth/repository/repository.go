package repository

import (
	"context"
	"database/sql"

	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/modules/auth/entity"

	"github.com/google/uuid"
)

// AuthRepository handles admin account database operations
type AuthRepository struct {
	DB database.Database
}

// AuthRepositoryInterface defines the repository contract
type AuthRepositoryInterface interface {
	CreateAdmin(ctx context.Context, admin *entity.Admin) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	GetAdminByGoogleID(ctx context.Context, googleID string) (*entity.Admin, error)
	LinkGoogleID(ctx context.Context, adminID uuid.UUID, googleID string) error
}

func NewAuthRepository(db database.Database) AuthRepositoryInterface {
	return &AuthRepository{DB: db}
}

func (r *AuthRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	query := `
		INSERT INTO admins (ngo_name, ngo_code, email, password, contact_number, location, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, ngo_name, ngo_code, email, password, contact_number, location, google_id,
		          email_verified_at, created_at, updated_at
	`

	var created entity.Admin
	err := r.DB.GetContext(ctx, &created, query,
		admin.NGOName, admin.NGOCode, admin.Email, admin.Password,
		admin.ContactNumber, admin.Location, admin.GoogleID)
	if err != nil {
		logger.Error("AuthRepository:CreateAdmin:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *AuthRepository) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, ngo_name, ngo_code, email, password, contact_number, location, google_id,
		       email_verified_at, created_at, updated_at
		FROM admins WHERE email = $1
	`

	var admin entity.Admin
	err := r.DB.GetContext(ctx, &admin, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetAdminByEmail:Error:", err)
		return nil, err
	}

	return &admin, nil
}

func (r *AuthRepository) GetAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	query := `
		SELECT id, ngo_name, ngo_code, email, password, contact_number, location, google_id,
		       email_verified_at, created_at, updated_at
		FROM admins WHERE id = $1
	`

	var admin entity.Admin
	err := r.DB.GetContext(ctx, &admin, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetAdminByID:Error:", err)
		return nil, err
	}

	return &admin, nil
}

func (r *AuthRepository) GetAdminByGoogleID(ctx context.Context, googleID string) (*entity.Admin, error) {
	query := `
		SELECT id, ngo_name, ngo_code, email, password, contact_number, location, google_id,
		       email_verified_at, created_at, updated_at
		FROM admins WHERE google_id = $1
	`

	var admin entity.Admin
	err := r.DB.GetContext(ctx, &admin, query, googleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetAdminByGoogleID:Error:", err)
		return nil, err
	}

	return &admin, nil
}

func (r *AuthRepository) LinkGoogleID(ctx context.Context, adminID uuid.UUID, googleID string) error {
	query := `UPDATE admins SET google_id = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, adminID, googleID); err != nil {
		logger.Error("AuthRepository:LinkGoogleID:Error:", err)
		return err
	}
	return nil
}
