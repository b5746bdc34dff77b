package routes

import (
	"log"
	"neuraledit-ai/internal/apis/dtos"
	"neuraledit-ai/internal/di"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupDefaultRoutes(router *gin.Engine) {
	// Health check route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dtos.Response{
			Success: true,
			Data:    "ok",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	queryHandler, err := di.GetQueryHandler()
	if err != nil {
		log.Fatalf("Failed to get query handler: %v", err)
	}
	historyHandler, err := di.GetHistoryHandler()
	if err != nil {
		log.Fatalf("Failed to get history handler: %v", err)
	}

	SetupQueryRoutes(router, queryHandler, historyHandler)
}
