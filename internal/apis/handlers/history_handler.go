package handlers

import (
	"neuraledit-ai/internal/apis/dtos"
	"neuraledit-ai/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// SaveHistory logs an executed query. The body may be any JSON value.
func (h *HistoryHandler) SaveHistory(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.historyService.SaveHistory(c.Request.Context(), payload); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.SaveHistoryResponse{Success: true})
}
