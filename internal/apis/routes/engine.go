package routes

import (
	"neuraledit-ai/internal/apis/middlewares"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with the middleware chain shared by all routes.
// Cross-origin requests are allowed from any origin.
func NewEngine(logger *zap.Logger) *gin.Engine {
	ginApp := gin.New() // Use gin.New() instead of gin.Default()

	ginApp.Use(middlewares.RequestIDMiddleware())
	ginApp.Use(middlewares.LoggerMiddleware(logger))
	ginApp.Use(middlewares.CustomRecoveryMiddleware(logger))

	ginApp.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			middlewares.RequestIDHeader,
		},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	return ginApp
}
