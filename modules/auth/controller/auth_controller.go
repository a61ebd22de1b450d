package controller

import (
	"strings"

	"volunteerhub/core/constants"
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/utils"
	"volunteerhub/modules/auth/dto"
	"volunteerhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /auth/register
// @Summary Register an NGO admin account
// @Description Creates a new NGO account with a generated join code and returns an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.NGOName == "" || req.Email == "" || len(req.Password) < 8 {
		return c.BadRequest(errors.ErrInvalidInput, "ngo_name, email and a password of at least 8 characters are required")
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Account created successfully")
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Authenticates an NGO admin with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Revokes the current access token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.AppError
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return c.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}

// Me handles GET /auth/me
// @Summary Get the authenticated account
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AdminResponse
// @Failure 401 {object} errors.AppError
// @Router /private/auth/me [get]
func (c *AuthController) Me(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	result, appErr := c.AuthService.Me(ctx.Request().Context(), claims)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GoogleLogin handles GET /auth/google/login
// @Summary Start Google sign-in
// @Description Returns the Google consent-screen URL
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Router /auth/google/login [get]
func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	url, appErr := c.AuthService.GoogleLoginURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.GoogleLoginURLResponse{URL: url}, "Success")
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Complete Google sign-in
// @Description Exchanges the authorization code and returns an access token
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State token from the login URL"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing authorization code")
	}
	state := ctx.QueryParam("state")
	if state == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing state token")
	}

	result, appErr := c.AuthService.GoogleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}
