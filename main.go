// File: agendabot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendabot/config"
	"agendabot/handlers"
	"agendabot/middleware"
	"agendabot/routes"
	"agendabot/services/agent"
	"agendabot/services/calendar"
	ai "agendabot/services/intelligence"
	"agendabot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Calendar collaborator.
	calendarSvc, err := calendar.NewGoogleCalendarService(
		context.Background(),
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.CalendarID,
		config.AppConfig.Timezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	// Intent classifier.
	classifier := ai.NewGeminiClassifier(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)

	// Conversation state store.
	var store agent.StateStore
	var stateRedis *redis.Client
	switch config.AppConfig.StateBackend {
	case "redis":
		stateRedis = utils.GetStateCacheClient()
		ttl := time.Duration(config.AppConfig.StateTTLMinutes) * time.Minute
		store = agent.NewRedisStateStore(stateRedis, ttl)
	default:
		store = agent.NewMemoryStateStore()
	}
	utils.StartHealthMonitor(stateRedis)

	agentSvc := agent.NewDefaultAgentService(calendarSvc, classifier, store, config.AppConfig.Timezone)
	chatHandler := handlers.NewChatHandler(agentSvc, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, chatHandler)

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
