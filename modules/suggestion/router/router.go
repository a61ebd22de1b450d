package router

import (
	"volunteerhub/core/middleware"
	"volunteerhub/modules/suggestion/controller"

	"github.com/labstack/echo/v4"
)

// SuggestionRouter handles suggestion routes
type SuggestionRouter struct {
	SuggestionController *controller.SuggestionController
}

func NewSuggestionRouter(suggestionController *controller.SuggestionController) *SuggestionRouter {
	return &SuggestionRouter{
		SuggestionController: suggestionController,
	}
}

// Setup registers suggestion routes
func (r *SuggestionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	suggestionRoutes := privateRoutes.Group("/suggestions", mw.AuthMiddleware())
	suggestionRoutes.POST("", r.SuggestionController.Suggest)
}
