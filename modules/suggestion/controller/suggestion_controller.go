package controller

import (
	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/modules/suggestion/dto"
	"volunteerhub/modules/suggestion/service"

	"github.com/labstack/echo/v4"
)

// SuggestionController serves scheduling suggestions for the review screen
type SuggestionController struct {
	controller.BaseController
	SuggestionService service.SuggestionServiceInterface
}

func NewSuggestionController(svc service.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		BaseController:    controller.NewBaseController(),
		SuggestionService: svc,
	}
}

// Suggest handles POST /suggestions
// @Summary Get a scheduling suggestion
// @Description Computes a recommended time slot, duration, matching interests and compatibility score for a volunteer/event pair
// @Tags Suggestion
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestRequest true "Volunteer and event data"
// @Success 200 {object} dto.SuggestionResult
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/suggestions [post]
func (c *SuggestionController) Suggest(ctx echo.Context) error {
	var req dto.SuggestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result := c.SuggestionService.GetSuggestion(ctx.Request().Context(), req.VolunteerData, req.EventData)

	return c.SuccessResponse(ctx, result, "Suggestion computed successfully")
}
