package submission

import (
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	"volunteerhub/core/storage"
	eventRepo "volunteerhub/modules/event/repository"
	"volunteerhub/modules/submission/controller"
	"volunteerhub/modules/submission/repository"
	"volunteerhub/modules/submission/router"
	"volunteerhub/modules/submission/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the submission module and registers routes. store may be
// nil when storage credentials are missing; uploads then return an error.
func Init(e *echo.Echo, db database.Database, store storage.Storage, mw *middleware.Middleware) {
	repo := repository.NewSubmissionRepository(db)
	svc := service.NewSubmissionService(repo, eventRepo.NewEventRepository(db), store)
	ctrl := controller.NewSubmissionController(svc)
	rtr := router.NewSubmissionRouter(ctrl)

	rtr.Setup(e, mw)
}
