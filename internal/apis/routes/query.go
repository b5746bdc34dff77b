package routes

import (
	"neuraledit-ai/internal/apis/handlers"

	"github.com/gin-gonic/gin"
)

// SetupQueryRoutes configures routes for query generation and history
func SetupQueryRoutes(router *gin.Engine, queryHandler *handlers.QueryHandler, historyHandler *handlers.HistoryHandler) {
	api := router.Group("/api")
	{
		api.POST("/generate-query", queryHandler.GenerateQuery)
		api.POST("/save-history", historyHandler.SaveHistory)
	}
}
