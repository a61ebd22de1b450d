package service

import (
	"context"
	"strings"

	"volunteerhub/core/cache"
	"volunteerhub/core/errors"
	"volunteerhub/core/logger"
	"volunteerhub/core/utils"
	"volunteerhub/modules/auth/dto"
	"volunteerhub/modules/auth/entity"
	"volunteerhub/modules/auth/repository"
)

// AuthService handles NGO admin authentication
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, claims *utils.TokenClaims) (*dto.AdminResponse, *errors.AppError)
	GoogleLoginURL(ctx context.Context) (string, *errors.AppError)
	GoogleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

// Register creates a new NGO admin account and issues an access token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	admin := &entity.Admin{
		NGOName:  req.NGOName,
		NGOCode:  utils.GenerateNGOCode(),
		Email:    email,
		Password: hashed,
	}
	if req.ContactNumber != "" {
		admin.ContactNumber = &req.ContactNumber
	}
	if req.Location != "" {
		admin.Location = &req.Location
	}

	created, err := s.repo.CreateAdmin(ctx, admin)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	return s.issueToken(created)
}

// Login authenticates an admin by email and password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if admin == nil || !utils.ComparePassword(admin.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueToken(admin)
}

// Logout blacklists the current token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// An invalid or expired token cannot be used anyway
		return nil
	}

	ttl := utils.TokenRemainingTTL(claims)
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}

	return nil
}

// Me returns the authenticated admin's account.
func (s *AuthService) Me(ctx context.Context, claims *utils.TokenClaims) (*dto.AdminResponse, *errors.AppError) {
	admin, err := s.repo.GetAdminByID(ctx, claims.AdminID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if admin == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Account not found", nil)
	}

	resp := dto.ToAdminResponse(admin)
	return &resp, nil
}

func (s *AuthService) issueToken(admin *entity.Admin) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(admin.ID, admin.NGOCode, admin.Email)
	if err != nil {
		logger.Error("AuthService:IssueToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	}, nil
}
