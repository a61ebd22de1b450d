package controller

import (
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/middleware"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/application/dto"
	"volunteerhub/modules/application/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ApplicationController handles application HTTP requests
type ApplicationController struct {
	controller.BaseController
	ApplicationService service.ApplicationServiceInterface
}

func NewApplicationController(svc service.ApplicationServiceInterface) *ApplicationController {
	return &ApplicationController{
		BaseController:     controller.NewBaseController(),
		ApplicationService: svc,
	}
}

func (c *ApplicationController) session(ctx echo.Context) (*utils.TokenClaims, bool) {
	return middleware.GetTokenClaims(ctx)
}

// Apply handles POST /applications
// @Summary Record an application
// @Description Records a volunteer's application to an event
// @Tags Application
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application details"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/applications [post]
func (c *ApplicationController) Apply(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	var req dto.CreateApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.EventID == "" || req.VolunteerID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "event_id and volunteer_id are required")
	}

	result, appErr := c.ApplicationService.Apply(ctx.Request().Context(), claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Application recorded successfully")
}

// List handles GET /applications
// @Summary List applications
// @Description Lists the NGO's applications, oldest first
// @Tags Application
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter (pending, approved, adjusted, rejected)"
// @Param event_id query string false "Event filter"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /private/applications [get]
func (c *ApplicationController) List(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	var eventID *uuid.UUID
	if raw := ctx.QueryParam("event_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid event_id filter")
		}
		eventID = &parsed
	}

	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.ApplicationService.List(ctx.Request().Context(),
		claims.NGOCode, ctx.QueryParam("status"), eventID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Review handles GET /applications/:id/review
// @Summary Review an application
// @Description Returns the application with the applicant, event and a scheduling suggestion
// @Tags Application
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} errors.AppError
// @Router /private/applications/{id}/review [get]
func (c *ApplicationController) Review(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	applicationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid application ID")
	}

	result, appErr := c.ApplicationService.GetReview(ctx.Request().Context(), applicationID, claims.NGOCode)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Decide handles POST /applications/:id/decision
// @Summary Decide an application
// @Description Approves, adjusts or rejects a pending application
// @Tags Application
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.DecideRequest true "Decision"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/applications/{id}/decision [post]
func (c *ApplicationController) Decide(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	applicationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid application ID")
	}

	var req dto.DecideRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Decision == "" {
		return c.BadRequest(errors.ErrInvalidInput, "decision is required")
	}

	result, appErr := c.ApplicationService.Decide(ctx.Request().Context(),
		applicationID, claims.AdminID, claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Decision saved successfully")
}
