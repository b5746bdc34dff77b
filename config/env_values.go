package config

import (
	"fmt"
	"neuraledit-ai/internal/constants"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker        bool
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	// Logging configs
	LogLevel  string
	LogFormat string

	// LLM configs
	DefaultLLMClient string
	LLMTimeout       time.Duration
	GeminiAPIKey     string
	GeminiModel      string
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIBaseURL    string
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates the result. A missing LLM API key is only reported as a
// warning so the server still starts; generation requests fail individually.
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "5000")
	Env.GinMode = getEnvWithDefault("GIN_MODE", "release")
	Env.ShutdownTimeout = getDurationEnvWithDefault("SHUTDOWN_TIMEOUT", 30*time.Second)

	// Logging configs
	Env.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	Env.LogFormat = getEnvWithDefault("LOG_FORMAT", "json")

	// LLM configs
	Env.DefaultLLMClient = getEnvWithDefault("DEFAULT_LLM_CLIENT", constants.Gemini)
	Env.LLMTimeout = getDurationEnvWithDefault("LLM_TIMEOUT", constants.DefaultLLMTimeout)
	Env.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	Env.GeminiModel = getEnvWithDefault("GEMINI_MODEL", constants.GeminiModel)
	Env.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	Env.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	Env.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")

	return validateConfig()
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvWithDefault(key string, defaultValue time.Duration) time.Duration {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	// Plain integers are read as seconds
	if seconds, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(seconds) * time.Second
	}

	value, err := time.ParseDuration(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %v\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	switch Env.DefaultLLMClient {
	case constants.Gemini:
		if Env.GeminiAPIKey == "" {
			fmt.Println("Warning: GEMINI_API_KEY is not set, query generation requests will fail")
		}
	case constants.OpenAI:
		if Env.OpenAIAPIKey == "" {
			fmt.Println("Warning: OPENAI_API_KEY is not set, query generation requests will fail")
		}
	default:
		return fmt.Errorf("unsupported DEFAULT_LLM_CLIENT: %s", Env.DefaultLLMClient)
	}

	switch Env.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got: %s", Env.GinMode)
	}

	if Env.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got: %v", Env.LLMTimeout)
	}

	return nil
}
