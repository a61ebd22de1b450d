package message

import (
	"volunteerhub/core/cache"
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	eventRepo "volunteerhub/modules/event/repository"
	"volunteerhub/modules/message/controller"
	"volunteerhub/modules/message/repository"
	"volunteerhub/modules/message/router"
	"volunteerhub/modules/message/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event chat module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewMessageRepository(db)
	svc := service.NewMessageService(repo, eventRepo.NewEventRepository(db), c)
	ctrl := controller.NewMessageController(svc)
	rtr := router.NewMessageRouter(ctrl)

	rtr.Setup(e, mw)
}
