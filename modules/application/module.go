package application

import (
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	"volunteerhub/modules/application/controller"
	"volunteerhub/modules/application/repository"
	"volunteerhub/modules/application/router"
	"volunteerhub/modules/application/service"
	eventRepo "volunteerhub/modules/event/repository"
	notificationService "volunteerhub/modules/notification/service"
	"volunteerhub/modules/notification/tasks"
	suggestionService "volunteerhub/modules/suggestion/service"
	volunteerRepo "volunteerhub/modules/volunteer/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the application module and registers routes. The review
// workflow reads volunteers and events directly and fans decisions out to
// notifications and the email queue.
func Init(
	e *echo.Echo,
	db database.Database,
	mw *middleware.Middleware,
	suggestions suggestionService.SuggestionServiceInterface,
	notifications *notificationService.NotificationService,
	taskClient *tasks.Client,
) {
	repo := repository.NewApplicationRepository(db)
	svc := service.NewApplicationService(
		repo,
		volunteerRepo.NewVolunteerRepository(db),
		eventRepo.NewEventRepository(db),
		suggestions,
		notifications,
		taskClient,
	)
	ctrl := controller.NewApplicationController(svc)
	rtr := router.NewApplicationRouter(ctrl)

	rtr.Setup(e, mw)
}
