package volunteer

import (
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	"volunteerhub/modules/volunteer/controller"
	"volunteerhub/modules/volunteer/repository"
	"volunteerhub/modules/volunteer/router"
	"volunteerhub/modules/volunteer/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the volunteer module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewVolunteerRepository(db)
	svc := service.NewVolunteerService(repo)
	ctrl := controller.NewVolunteerController(svc)
	rtr := router.NewVolunteerRouter(ctrl)

	rtr.Setup(e, mw)
}
