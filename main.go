// File: chorus/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chorus/config"
	"chorus/cron"
	"chorus/database"
	concertRepoPkg "chorus/database/repository/concert"
	reminderRepoPkg "chorus/database/repository/reminder"
	userRepoPkg "chorus/database/repository/user"
	"chorus/handlers"
	"chorus/middleware"
	"chorus/routes"
	"chorus/services/concert"
	"chorus/services/notification"
	"chorus/services/reminder"
	"chorus/services/scheduler"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	concertRepo := concertRepoPkg.NewMongoConcertRepo()

	// collaborators.
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	alarmScheduler := scheduler.NewAsynqAlarmScheduler(redisOpts)
	pushGateway := notification.NewExpoPushClient(config.AppConfig.ExpoPushURL)

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users:   userRepo,
		Gateway: pushGateway,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo:     reminderRepo,
		Alarms:   alarmScheduler,
		Notifier: notificationService,
	}
	concertService := &concert.DefaultConcertService{
		Repo: concertRepo,
	}

	// Background worker consuming due reminder alarms.
	cron.InitReminderWorker(notificationService, reminderRepo)
	utils.StartHealthMonitor(utils.GetReminderQueueClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:   userRepo,
		Auth:       handlers.NewAuthHandler(userRepo),
		Reminders:  handlers.NewReminderHandler(reminderService),
		Concerts:   handlers.NewConcertHandler(concertService),
		UserDevice: handlers.NewUserDeviceHandler(userRepo),
		Health:     handlers.NewHealthHandler(notificationService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
