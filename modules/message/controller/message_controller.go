package controller

import (
	"fmt"
	"net/http"

	"volunteerhub/core/controller"
	"volunteerhub/core/errors"
	"volunteerhub/core/middleware"
	"volunteerhub/core/params"
	"volunteerhub/core/utils"
	"volunteerhub/modules/message/dto"
	"volunteerhub/modules/message/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MessageController handles event chat HTTP requests
type MessageController struct {
	controller.BaseController
	MessageService service.MessageServiceInterface
}

func NewMessageController(svc service.MessageServiceInterface) *MessageController {
	return &MessageController{
		BaseController: controller.NewBaseController(),
		MessageService: svc,
	}
}

func (c *MessageController) session(ctx echo.Context) (*utils.TokenClaims, bool) {
	return middleware.GetTokenClaims(ctx)
}

// Send handles POST /events/:id/messages
// @Summary Send a chat message
// @Description Posts a message into the event's conversation and publishes it to live subscribers
// @Tags Message
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SendMessageRequest true "Message body"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/messages [post]
func (c *MessageController) Send(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.SendMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Body == "" {
		return c.BadRequest(errors.ErrInvalidInput, "body is required")
	}

	result, appErr := c.MessageService.Send(ctx.Request().Context(),
		eventID, claims.AdminID, claims.Email, claims.NGOCode, req.Body)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Message sent successfully")
}

// History handles GET /events/:id/messages
// @Summary List chat history
// @Description Returns the event's messages, newest first
// @Tags Message
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/messages [get]
func (c *MessageController) History(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	queryParams := params.NewQueryParams(ctx)
	result, appErr := c.MessageService.History(ctx.Request().Context(), eventID, claims.NGOCode, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Stream handles GET /events/:id/messages/stream
// @Summary Stream chat messages
// @Description Server-sent event stream of new messages in the event's conversation
// @Tags Message
// @Security BearerAuth
// @Produce text/event-stream
// @Param id path string true "Event ID"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} errors.AppError
// @Router /private/events/{id}/messages/stream [get]
func (c *MessageController) Stream(ctx echo.Context) error {
	claims, ok := c.session(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	sub, appErr := c.MessageService.Subscribe(ctx.Request().Context(), eventID, claims.NGOCode)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	defer sub.Close()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case msg, open := <-ch:
			if !open {
				return nil
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", msg.Payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
