package main

import (
	"volunteerhub/core/logger"
	"volunteerhub/core/server"

	_ "volunteerhub/docs" // Swagger docs
)

// @title VolunteerHub Admin API
// @version 1.0
// @description Admin backend for the VolunteerHub volunteer management platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@volunteerhub.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
