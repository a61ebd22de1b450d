package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/message/controller"

	"github.com/labstack/echo/v4"
)

// MessageRouter handles event chat routes
type MessageRouter struct {
	MessageController *controller.MessageController
}

func NewMessageRouter(messageController *controller.MessageController) *MessageRouter {
	return &MessageRouter{
		MessageController: messageController,
	}
}

// Setup registers chat routes under the event resource
func (r *MessageRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	messageRoutes := privateRoutes.Group("/events/:id/messages", mw.AuthMiddleware())
	messageRoutes.POST("", r.MessageController.Send)
	messageRoutes.GET("", r.MessageController.History)
	messageRoutes.GET("/stream", r.MessageController.Stream)
}
