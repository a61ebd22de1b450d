package auth

import (
	"volunteerhub/core/cache"
	"volunteerhub/core/database"
	"volunteerhub/core/middleware"
	"volunteerhub/modules/auth/controller"
	"volunteerhub/modules/auth/repository"
	"volunteerhub/modules/auth/router"
	"volunteerhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, c cache.Cache) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)
	mw := middleware.NewMiddleware(c)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}
