package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mealroom/config"
	"mealroom/database"
	roomRepoPkg "mealroom/database/repository/room"
	scheduleRepoPkg "mealroom/database/repository/schedule"
	"mealroom/handlers"
	"mealroom/middleware"
	"mealroom/models"
	"mealroom/routes"
	"mealroom/services/history"
	"mealroom/services/planner"
	roomSvc "mealroom/services/room"
	scheduleSvc "mealroom/services/schedule"
	"mealroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetHistoryClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.DeviceMiddleware())

	// Repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()

	// Services.
	roomService := &roomSvc.DefaultRoomService{
		Repo:     roomRepo,
		Slugs:    roomSvc.NewSlugGenerator(),
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.RoomCacheTTL) * time.Second,
	}
	scheduleService := &scheduleSvc.DefaultScheduleService{
		Repo:     scheduleRepo,
		Planner:  planner.New(models.Catalog),
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.ScheduleCacheTTL) * time.Second,
	}
	historyService := &history.DefaultHistoryService{
		Store: history.NewRedisStore(utils.GetHistoryClient()),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Rooms:     handlers.NewRoomHandler(roomService, historyService),
		Schedules: handlers.NewScheduleHandler(scheduleService),
		History:   handlers.NewHistoryHandler(historyService, roomService),
	}

	// Register routes with the assembled handler bundle.
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
