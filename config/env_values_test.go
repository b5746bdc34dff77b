package config

import (
	"neuraledit-ai/internal/constants"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv isolates a test from the host environment and skips the .env lookup.
func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	keys := []string{
		"PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"DEFAULT_LLM_CLIENT", "LLM_TIMEOUT", "GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
	t.Setenv("IS_DOCKER", "true")
	for key, value := range values {
		t.Setenv(key, value)
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	setEnv(t, nil)

	require.NoError(t, LoadEnv())

	assert.True(t, Env.IsDocker)
	assert.Equal(t, "5000", Env.Port)
	assert.Equal(t, "release", Env.GinMode)
	assert.Equal(t, 30*time.Second, Env.ShutdownTimeout)
	assert.Equal(t, "info", Env.LogLevel)
	assert.Equal(t, "json", Env.LogFormat)
	assert.Equal(t, constants.Gemini, Env.DefaultLLMClient)
	assert.Equal(t, constants.DefaultLLMTimeout, Env.LLMTimeout)
	assert.Equal(t, constants.GeminiModel, Env.GeminiModel)
	assert.Equal(t, "gpt-4o", Env.OpenAIModel)
	assert.Empty(t, Env.GeminiAPIKey)
}

func TestLoadEnv_MissingAPIKeyIsNotFatal(t *testing.T) {
	setEnv(t, map[string]string{"DEFAULT_LLM_CLIENT": constants.OpenAI})

	assert.NoError(t, LoadEnv())
}

func TestLoadEnv_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":               "8080",
		"GIN_MODE":           "debug",
		"LLM_TIMEOUT":        "15",
		"SHUTDOWN_TIMEOUT":   "5s",
		"GEMINI_API_KEY":     "secret",
		"DEFAULT_LLM_CLIENT": constants.Gemini,
	})

	require.NoError(t, LoadEnv())

	assert.Equal(t, "8080", Env.Port)
	assert.Equal(t, "debug", Env.GinMode)
	assert.Equal(t, 15*time.Second, Env.LLMTimeout)
	assert.Equal(t, 5*time.Second, Env.ShutdownTimeout)
	assert.Equal(t, "secret", Env.GeminiAPIKey)
}

func TestLoadEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		errMsg string
	}{
		{
			name:   "unknown provider",
			values: map[string]string{"DEFAULT_LLM_CLIENT": "anthropic"},
			errMsg: "unsupported DEFAULT_LLM_CLIENT: anthropic",
		},
		{
			name:   "unknown gin mode",
			values: map[string]string{"GIN_MODE": "production"},
			errMsg: "GIN_MODE must be one of debug, release, test, got: production",
		},
		{
			name:   "negative timeout",
			values: map[string]string{"LLM_TIMEOUT": "-5s"},
			errMsg: "LLM_TIMEOUT must be positive, got: -5s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.values)
			assert.EqualError(t, LoadEnv(), tt.errMsg)
		})
	}
}

func TestGetDurationEnvWithDefault(t *testing.T) {
	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, getDurationEnvWithDefault("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, getDurationEnvWithDefault("TEST_DURATION", time.Minute))
}
