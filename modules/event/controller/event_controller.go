package controller

import (
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/middleware"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/event/dto"
	"volunteerhub/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

func (c *EventController) session(ctx echo.Context) (*utils.TokenClaims, error) {
	claims, ok := middleware.GetTokenClaims(ctx)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Not authenticated", nil)
	}
	return claims, nil
}

// Create handles POST /events
// @Summary Create an event
// @Description Creates a volunteering event for the caller's NGO
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) Create(ctx echo.Context) error {
	claims, err := c.session(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Title == "" || req.Date == "" || req.TimeStart == "" || req.TimeEnd == "" || req.VolunteersLimit < 1 {
		return c.BadRequest(errors.ErrInvalidInput, "title, date, time_start, time_end and volunteers_limit are required")
	}

	result, appErr := c.EventService.Create(ctx.Request().Context(), claims.AdminID, claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// List handles GET /events
// @Summary List events
// @Description Lists the caller's NGO events, newest first
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Title filter"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /private/events [get]
func (c *EventController) List(ctx echo.Context) error {
	claims, err := c.session(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.EventService.List(ctx.Request().Context(), claims.NGOCode, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /events/:id
// @Summary Get an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [get]
func (c *EventController) Get(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetBySlug handles GET /events/slug/:slug
// @Summary Get an event by slug
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/events/slug/{slug} [get]
func (c *EventController) GetBySlug(ctx echo.Context) error {
	eventSlug := ctx.Param("slug")
	if eventSlug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing event slug")
	}

	result, appErr := c.EventService.GetBySlug(ctx.Request().Context(), eventSlug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PUT /events/:id
// @Summary Update an event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Changed fields"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/events/{id} [put]
func (c *EventController) Update(ctx echo.Context) error {
	claims, err := c.session(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), eventID, claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// Delete handles DELETE /events/:id
// @Summary Delete an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id} [delete]
func (c *EventController) Delete(ctx echo.Context) error {
	claims, err := c.session(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.Delete(ctx.Request().Context(), eventID, claims.NGOCode); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
