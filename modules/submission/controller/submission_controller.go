package controller

import (
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/middleware"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/submission/dto"
	"volunteerhub/modules/submission/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubmissionController handles submission HTTP requests
type SubmissionController struct {
	controller.BaseController
	SubmissionService service.SubmissionServiceInterface
}

func NewSubmissionController(svc service.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{
		BaseController:    controller.NewBaseController(),
		SubmissionService: svc,
	}
}

func (c *SubmissionController) session(ctx echo.Context) (*utils.TokenClaims, bool) {
	return middleware.GetTokenClaims(ctx)
}

// Upload handles POST /submissions
// @Summary Upload a submission
// @Description Uploads a task or photo submission for an event
// @Tags Submission
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Submission file"
// @Param event_id formData string true "Event ID"
// @Param volunteer_id formData string true "Volunteer ID"
// @Param caption formData string false "Caption"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /private/submissions [post]
func (c *SubmissionController) Upload(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.FormValue("event_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event_id")
	}
	volunteerID, err := uuid.Parse(ctx.FormValue("volunteer_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid volunteer_id")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.InternalServerError(errors.ErrUploadFailed, "Failed to read uploaded file")
	}
	defer file.Close()

	result, appErr := c.SubmissionService.Upload(ctx.Request().Context(),
		claims.NGOCode, eventID, volunteerID, ctx.FormValue("caption"),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Submission uploaded successfully")
}

// List handles GET /events/:id/submissions
// @Summary List submissions
// @Description Lists an event's submissions, newest first
// @Tags Submission
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/submissions [get]
func (c *SubmissionController) List(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.SubmissionService.ListByEvent(ctx.Request().Context(), eventID, claims.NGOCode, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Review handles PUT /submissions/:id/review
// @Summary Review a submission
// @Description Approves or rejects a submission
// @Tags Submission
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body dto.ReviewSubmissionRequest true "Review outcome"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/submissions/{id}/review [put]
func (c *SubmissionController) Review(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	submissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid submission ID")
	}

	var req dto.ReviewSubmissionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Status == "" {
		return c.BadRequest(errors.ErrInvalidInput, "status is required")
	}

	result, appErr := c.SubmissionService.Review(ctx.Request().Context(), submissionID, claims.NGOCode, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Submission reviewed successfully")
}

// Delete handles DELETE /submissions/:id
// @Summary Delete a submission
// @Tags Submission
// @Security BearerAuth
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/submissions/{id} [delete]
func (c *SubmissionController) Delete(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	submissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid submission ID")
	}

	if appErr := c.SubmissionService.Delete(ctx.Request().Context(), submissionID, claims.NGOCode); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Submission deleted successfully")
}
