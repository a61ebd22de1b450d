package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/volunteer/controller"

	"github.com/labstack/echo/v4"
)

// VolunteerRouter handles volunteer routes
type VolunteerRouter struct {
	VolunteerController *controller.VolunteerController
}

func NewVolunteerRouter(volunteerController *controller.VolunteerController) *VolunteerRouter {
	return &VolunteerRouter{
		VolunteerController: volunteerController,
	}
}

// Setup registers volunteer routes
func (r *VolunteerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	volunteerRoutes := privateRoutes.Group("/volunteers", mw.AuthMiddleware())
	volunteerRoutes.POST("", r.VolunteerController.Create)
	volunteerRoutes.GET("", r.VolunteerController.List)
	volunteerRoutes.GET("/:id", r.VolunteerController.Get)
	volunteerRoutes.PUT("/:id", r.VolunteerController.Update)
}
