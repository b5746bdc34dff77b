package main

import (
	"context"
	"errors"
	"log"
	"neuraledit-ai/config"
	"neuraledit-ai/internal/apis/routes"
	"neuraledit-ai/internal/di"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment variables: %v", err)
	}
	gin.SetMode(config.Env.GinMode)

	// Initialize dependencies
	di.Initialize()

	logger, err := di.GetLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Setup Gin with request id, logging, recovery and CORS middleware
	ginApp := routes.NewEngine(logger)

	// Setup routes
	routes.SetupDefaultRoutes(ginApp)

	// Create server
	srv := &http.Server{
		Addr:              ":" + config.Env.Port,
		Handler:           ginApp,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("port", config.Env.Port),
			zap.String("llm_provider", config.Env.DefaultLLMClient),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), config.Env.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if manager, err := di.GetLLMManager(); err == nil {
		if err := manager.Close(); err != nil {
			logger.Warn("Failed to close LLM clients", zap.Error(err))
		}
	}

	logger.Info("Server exiting")
}
