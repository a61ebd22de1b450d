package notification

import (
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	"volunteerhub/modules/notification/controller"
	"volunteerhub/modules/notification/repository"
	"volunteerhub/modules/notification/router"
	"volunteerhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module. The returned service is shared
// with the application-review module for decision notifications.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}
