package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/submission/controller"

	"github.com/labstack/echo/v4"
)

// SubmissionRouter handles submission routes
type SubmissionRouter struct {
	SubmissionController *controller.SubmissionController
}

func NewSubmissionRouter(submissionController *controller.SubmissionController) *SubmissionRouter {
	return &SubmissionRouter{
		SubmissionController: submissionController,
	}
}

// Setup registers submission routes
func (r *SubmissionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	submissionRoutes := privateRoutes.Group("/submissions", mw.AuthMiddleware())
	submissionRoutes.POST("", r.SubmissionController.Upload)
	submissionRoutes.PUT("/:id/review", r.SubmissionController.Review)
	submissionRoutes.DELETE("/:id", r.SubmissionController.Delete)

	eventSubmissions := privateRoutes.Group("/events/:id/submissions", mw.AuthMiddleware())
	eventSubmissions.GET("", r.SubmissionController.List)
}
