package di

import (
	"context"
	"errors"
	"neuraledit-ai/config"
	"neuraledit-ai/internal/constants"
	"neuraledit-ai/pkg/llm"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env config.Environment) {
	t.Helper()
	previous := config.Env
	config.Env = env
	t.Cleanup(func() { config.Env = previous })
}

func TestInitialize_MissingAPIKeyRegistersUnavailableClient(t *testing.T) {
	withEnv(t, config.Environment{
		LogLevel:         "error",
		LogFormat:        "console",
		DefaultLLMClient: constants.Gemini,
		LLMTimeout:       time.Second,
	})

	Initialize()

	queryHandler, err := GetQueryHandler()
	require.NoError(t, err)
	assert.NotNil(t, queryHandler)

	historyHandler, err := GetHistoryHandler()
	require.NoError(t, err)
	assert.NotNil(t, historyHandler)

	manager, err := GetLLMManager()
	require.NoError(t, err)

	client, err := manager.GetClient(constants.Gemini)
	require.NoError(t, err)
	assert.Equal(t, constants.Gemini, client.GetModelInfo().Provider)

	_, err = client.GenerateContent(context.Background(), "prompt")
	var genErr *llm.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestInitialize_OpenAIClient(t *testing.T) {
	withEnv(t, config.Environment{
		LogLevel:         "info",
		LogFormat:        "json",
		DefaultLLMClient: constants.OpenAI,
		LLMTimeout:       time.Second,
		OpenAIAPIKey:     "test-key",
		OpenAIModel:      "gpt-4o-mini",
	})

	Initialize()

	logger, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	manager, err := GetLLMManager()
	require.NoError(t, err)

	client, err := manager.GetClient(constants.OpenAI)
	require.NoError(t, err)
	assert.Equal(t, llm.ModelInfo{
		Name:            "gpt-4o-mini",
		Provider:        constants.OpenAI,
		MaxOutputTokens: constants.LLMMaxOutputTokens,
	}, client.GetModelInfo())
}
