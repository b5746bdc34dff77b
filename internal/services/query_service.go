package services

import (
	"context"
	"errors"
	"fmt"
	"neuraledit-ai/internal/apis/dtos"
	"neuraledit-ai/internal/constants"
	"neuraledit-ai/internal/metrics"
	"neuraledit-ai/pkg/llm"
	"time"

	"go.uber.org/zap"
)

// QueryService turns a natural-language request about one table into a SQL query.
type QueryService interface {
	GenerateQuery(ctx context.Context, req *dtos.GenerateQueryRequest) (*dtos.GenerateQueryResponse, error)
}

type queryService struct {
	llmClient llm.Client
	timeout   time.Duration
	logger    *zap.Logger
}

func NewQueryService(llmClient llm.Client, timeout time.Duration, logger *zap.Logger) QueryService {
	if timeout <= 0 {
		timeout = constants.DefaultLLMTimeout
	}
	return &queryService{
		llmClient: llmClient,
		timeout:   timeout,
		logger:    logger,
	}
}

// GenerateQuery validates the request, builds the prompt, calls the model and
// sanitizes its answer. Errors are *ValidationError, *llm.GenerationError or
// *QuerySyntaxRejection.
func (s *queryService) GenerateQuery(ctx context.Context, req *dtos.GenerateQueryRequest) (*dtos.GenerateQueryResponse, error) {
	if err := ValidateQueryRequest(req); err != nil {
		metrics.QueryGenerationsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return nil, err
	}

	prompt := BuildPrompt(PromptInput{
		TableName:          *req.TableName,
		TableDescription:   req.TableDescription,
		Columns:            req.Columns,
		ColumnDescriptions: req.ColumnDescriptions,
		SampleData:         req.SampleData,
		UserPrompt:         *req.Prompt,
	})
	s.logger.Debug("composed prompt", zap.String("table", *req.TableName), zap.String("prompt", prompt))

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("query generation failed", zap.String("table", *req.TableName), zap.Error(err))
		metrics.QueryGenerationsTotal.WithLabelValues(metrics.OutcomeGenerationError).Inc()
		return nil, err
	}

	query, err := SanitizeQuery(raw)
	if err != nil {
		s.logger.Warn("generated text is not a SQL query",
			zap.String("table", *req.TableName),
			zap.String("raw_response", raw),
		)
		metrics.QueryGenerationsTotal.WithLabelValues(metrics.OutcomeRejectedQuery).Inc()
		return nil, err
	}

	s.logger.Info("query generated", zap.String("table", *req.TableName), zap.String("query", query))
	metrics.QueryGenerationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	return &dtos.GenerateQueryResponse{
		Query:       query,
		Explanation: fmt.Sprintf(constants.ExplanationTemplate, *req.Prompt),
	}, nil
}

// generate calls the model under the configured timeout. Any failure comes
// back as a *llm.GenerationError.
func (s *queryService) generate(ctx context.Context, prompt string) (string, error) {
	provider := s.llmClient.GetModelInfo().Provider

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.llmClient.GenerateContent(ctx, prompt)
	metrics.LLMRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	if err == nil {
		return raw, nil
	}

	var genErr *llm.GenerationError
	if !errors.As(err, &genErr) {
		genErr = &llm.GenerationError{Provider: provider, Err: err}
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !genErr.IsTimeout() {
		genErr = &llm.GenerationError{
			Provider: provider,
			Err:      fmt.Errorf("generation timed out after %s: %w", s.timeout, context.DeadlineExceeded),
		}
	}
	return "", genErr
}
