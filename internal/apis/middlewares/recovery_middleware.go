package middlewares

import (
	"fmt"
	"io"
	"neuraledit-ai/internal/apis/dtos"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomRecoveryMiddleware turns a panic into a 500 {error} response. The stack
// trace goes to the log, never to the client.
func CustomRecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.ErrorResponse{
			Error: fmt.Sprint(recovered),
		})
	})
}
