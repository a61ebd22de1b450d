package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())
	eventRoutes.POST("", r.EventController.Create)
	eventRoutes.GET("", r.EventController.List)
	eventRoutes.GET("/:id", r.EventController.Get)
	eventRoutes.GET("/slug/:slug", r.EventController.GetBySlug)
	eventRoutes.PUT("/:id", r.EventController.Update)
	eventRoutes.DELETE("/:id", r.EventController.Delete)
}
