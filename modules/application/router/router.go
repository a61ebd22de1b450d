package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/application/controller"

	"github.com/labstack/echo/v4"
)

// ApplicationRouter handles application routes
type ApplicationRouter struct {
	ApplicationController *controller.ApplicationController
}

func NewApplicationRouter(applicationController *controller.ApplicationController) *ApplicationRouter {
	return &ApplicationRouter{
		ApplicationController: applicationController,
	}
}

// Setup registers application routes
func (r *ApplicationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	applicationRoutes := privateRoutes.Group("/applications", mw.AuthMiddleware())
	applicationRoutes.POST("", r.ApplicationController.Apply)
	applicationRoutes.GET("", r.ApplicationController.List)
	applicationRoutes.GET("/:id/review", r.ApplicationController.Review)
	applicationRoutes.POST("/:id/decision", r.ApplicationController.Decide)
}
