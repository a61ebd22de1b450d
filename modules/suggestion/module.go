package suggestion

import (
	"volunteerhub/core/config"
	"volunteerhub/core/middleware"
	"volunteerhub/modules/suggestion/controller"
	"volunteerhub/modules/suggestion/router"
	"volunteerhub/modules/suggestion/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the suggestion module and registers routes. The returned
// service is shared with the application-review module.
func Init(e *echo.Echo, mw *middleware.Middleware) service.SuggestionServiceInterface {
	cfg := config.Get()

	client := service.NewRemoteClient(cfg.Suggestion)
	svc := service.NewSuggestionService(client)
	ctrl := controller.NewSuggestionController(svc)
	rtr := router.NewSuggestionRouter(ctrl)

	rtr.Setup(e, mw)

	return svc
}
