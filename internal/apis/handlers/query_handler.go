package handlers

import (
	"errors"
	"neuraledit-ai/internal/apis/dtos"
	"neuraledit-ai/internal/metrics"
	"neuraledit-ai/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// QueryHandler handles natural-language to SQL generation
type QueryHandler struct {
	queryService services.QueryService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// GenerateQuery generates a SQL query for the table described in the request body
func (h *QueryHandler) GenerateQuery(c *gin.Context) {
	var req dtos.GenerateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.QueryGenerationsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		respondWithError(c, bindingError(err))
		return
	}

	response, err := h.queryService.GenerateQuery(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// bindingError maps a failed bind to a ValidationError. Failed "required"
// checks share the fixed missing-parameters message; anything else is a
// malformed body.
func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return services.ErrMissingParameters
	}
	return &services.ValidationError{Message: "invalid request body: " + err.Error()}
}

func respondWithError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var rejection *services.QuerySyntaxRejection

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &rejection):
		rawResponse := rejection.RawResponse
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{
			Error:       rejection.Message,
			RawResponse: &rawResponse,
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: err.Error()})
	}
}
