package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteerhub/core/cache"
	"volunteerhub/core/config"
	"volunteerhub/core/constants"
	"volunteerhub/core/database"
	"volunteerhub/core/logger"
	"volunteerhub/core/middleware"
	"volunteerhub/core/storage"
	"volunteerhub/modules/application"
	"volunteerhub/modules/auth"
	"volunteerhub/modules/event"
	"volunteerhub/modules/message"
	"volunteerhub/modules/notification"
	"volunteerhub/modules/notification/tasks"
	"volunteerhub/modules/submission"
	"volunteerhub/modules/suggestion"
	"volunteerhub/modules/volunteer"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run wires the whole application together and blocks until shutdown.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Get()
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	cacheClient, err := cache.NewCache(cfg)
	if err != nil {
		return err
	}
	defer cacheClient.Close()

	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		// Uploads are disabled until storage credentials are configured;
		// everything else keeps working.
		logger.Warn("Storage not available, file uploads disabled", "error", err)
		store = nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	taskClient := tasks.NewClient(redisOpt)
	defer taskClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := middleware.NewMiddleware(cacheClient)

	// Module wiring
	auth.Init(e, db, cacheClient)
	event.Init(e, db, mw)
	volunteer.Init(e, db, mw)
	suggestionSvc := suggestion.Init(e, mw)
	notificationSvc := notification.Init(e, db, mw)
	application.Init(e, db, mw, suggestionSvc, notificationSvc, taskClient)
	message.Init(e, db, cacheClient, mw)
	submission.Init(e, db, store, mw)

	// Background worker for email delivery
	worker := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			constants.QueueEmails:  5,
			constants.QueueDefault: 1,
		},
	})
	mux := asynq.NewServeMux()
	tasks.RegisterHandlers(mux)
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:AsynqWorker:Error:", err)
		}
	}()

	// Start HTTP server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port, "env", cfg.Server.Env)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	worker.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:Error:", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}
