package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for QueryGenerationsTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidRequest  = "invalid_request"
	OutcomeGenerationError = "generation_error"
	OutcomeRejectedQuery   = "rejected_query"
)

var (
	QueryGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_query_generations_total",
			Help: "Total number of query generation requests by outcome",
		},
		[]string{"outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlgen_llm_request_duration_seconds",
			Help:    "Duration of generation calls to the LLM provider in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		},
		[]string{"provider"},
	)

	HistorySavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sqlgen_history_saves_total",
			Help: "Total number of query history entries received",
		},
	)
)
