package di

import (
	"log"
	"neuraledit-ai/config"
	"neuraledit-ai/internal/apis/handlers"
	"neuraledit-ai/internal/constants"
	"neuraledit-ai/internal/services"
	"neuraledit-ai/pkg/llm"
	"neuraledit-ai/pkg/logger"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// Logger
	if err := DiContainer.Provide(func() (*zap.Logger, error) {
		return logger.New(config.Env.LogLevel, config.Env.LogFormat)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// LLM Manager
	if err := DiContainer.Provide(func(logger *zap.Logger) *llm.Manager {
		manager := llm.NewManager()
		provider := config.Env.DefaultLLMClient

		llmConfig := llm.Config{
			Provider:        provider,
			Temperature:     constants.LLMTemperature,
			TopP:            constants.LLMTopP,
			TopK:            constants.LLMTopK,
			MaxOutputTokens: constants.LLMMaxOutputTokens,
		}
		switch provider {
		case constants.Gemini:
			llmConfig.Model = config.Env.GeminiModel
			llmConfig.APIKey = config.Env.GeminiAPIKey
		case constants.OpenAI:
			llmConfig.Model = config.Env.OpenAIModel
			llmConfig.APIKey = config.Env.OpenAIAPIKey
			llmConfig.BaseURL = config.Env.OpenAIBaseURL
		}

		if err := manager.RegisterClient(provider, llmConfig); err != nil {
			// Keep serving; generation requests fail one by one with this cause.
			logger.Warn("LLM client unavailable, query generation will fail",
				zap.String("provider", provider),
				zap.Error(err),
			)
			manager.Register(provider, llm.NewUnavailableClient(provider, err))
		}
		return manager
	}); err != nil {
		log.Fatalf("Failed to provide LLM manager: %v", err)
	}

	// Default LLM client
	if err := DiContainer.Provide(func(manager *llm.Manager) (llm.Client, error) {
		return manager.GetClient(config.Env.DefaultLLMClient)
	}); err != nil {
		log.Fatalf("Failed to provide LLM client: %v", err)
	}

	// Provide services
	if err := DiContainer.Provide(func(llmClient llm.Client, logger *zap.Logger) services.QueryService {
		return services.NewQueryService(llmClient, config.Env.LLMTimeout, logger)
	}); err != nil {
		log.Fatalf("Failed to provide query service: %v", err)
	}

	if err := DiContainer.Provide(func(logger *zap.Logger) services.HistoryService {
		return services.NewHistoryService(logger)
	}); err != nil {
		log.Fatalf("Failed to provide history service: %v", err)
	}

	// Provide handlers
	if err := DiContainer.Provide(func(queryService services.QueryService) *handlers.QueryHandler {
		return handlers.NewQueryHandler(queryService)
	}); err != nil {
		log.Fatalf("Failed to provide query handler: %v", err)
	}

	if err := DiContainer.Provide(func(historyService services.HistoryService) *handlers.HistoryHandler {
		return handlers.NewHistoryHandler(historyService)
	}); err != nil {
		log.Fatalf("Failed to provide history handler: %v", err)
	}
}

// GetQueryHandler retrieves the QueryHandler from the DI container
func GetQueryHandler() (*handlers.QueryHandler, error) {
	var handler *handlers.QueryHandler
	err := DiContainer.Invoke(func(h *handlers.QueryHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetHistoryHandler retrieves the HistoryHandler from the DI container
func GetHistoryHandler() (*handlers.HistoryHandler, error) {
	var handler *handlers.HistoryHandler
	err := DiContainer.Invoke(func(h *handlers.HistoryHandler) {
		handler = h
	})
	return handler, err
}

// GetLogger retrieves the shared zap logger
func GetLogger() (*zap.Logger, error) {
	var l *zap.Logger
	err := DiContainer.Invoke(func(logger *zap.Logger) {
		l = logger
	})
	return l, err
}

// GetLLMManager retrieves the LLM manager so its clients can be closed on shutdown
func GetLLMManager() (*llm.Manager, error) {
	var manager *llm.Manager
	err := DiContainer.Invoke(func(m *llm.Manager) {
		manager = m
	})
	return manager, err
}
