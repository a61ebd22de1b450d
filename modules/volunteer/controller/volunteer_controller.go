package controller

import (
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/middleware"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/volunteer/dto"
	"volunteerhub/modules/volunteer/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VolunteerController handles volunteer HTTP requests
type VolunteerController struct {
	controller.BaseController
	VolunteerService service.VolunteerServiceInterface
}

func NewVolunteerController(svc service.VolunteerServiceInterface) *VolunteerController {
	return &VolunteerController{
		BaseController:   controller.NewBaseController(),
		VolunteerService: svc,
	}
}

func (c *VolunteerController) session(ctx echo.Context) (*utils.TokenClaims, bool) {
	return middleware.GetTokenClaims(ctx)
}

// Create handles POST /volunteers
// @Summary Register a volunteer
// @Description Adds a volunteer to the caller's NGO registry
// @Tags Volunteer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVolunteerRequest true "Volunteer details"
// @Success 200 {object} dto.VolunteerResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/volunteers [post]
func (c *VolunteerController) Create(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	var req dto.CreateVolunteerRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return c.BadRequest(errors.ErrInvalidInput, "first_name, last_name and email are required")
	}

	result, appErr := c.VolunteerService.Create(ctx.Request().Context(), claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Volunteer registered successfully")
}

// List handles GET /volunteers
// @Summary List volunteers
// @Tags Volunteer
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or email filter"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /private/volunteers [get]
func (c *VolunteerController) List(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.VolunteerService.List(ctx.Request().Context(), claims.NGOCode, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /volunteers/:id
// @Summary Get a volunteer
// @Tags Volunteer
// @Security BearerAuth
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} dto.VolunteerResponse
// @Failure 404 {object} errors.AppError
// @Router /private/volunteers/{id} [get]
func (c *VolunteerController) Get(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	volunteerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid volunteer ID")
	}

	result, appErr := c.VolunteerService.GetByID(ctx.Request().Context(), volunteerID, claims.NGOCode)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PUT /volunteers/:id
// @Summary Update a volunteer
// @Tags Volunteer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body dto.UpdateVolunteerRequest true "Changed fields"
// @Success 200 {object} dto.VolunteerResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/volunteers/{id} [put]
func (c *VolunteerController) Update(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	volunteerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid volunteer ID")
	}

	var req dto.UpdateVolunteerRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.VolunteerService.Update(ctx.Request().Context(), volunteerID, claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Volunteer updated successfully")
}
