package llm

import (
	"context"
)

// Client defines the interface for LLM interactions. Each call is a single,
// independent turn: no conversation history is carried between calls.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	GetModelInfo() ModelInfo
}

// ModelInfo contains information about the LLM model
type ModelInfo struct {
	Name            string
	Provider        string
	MaxOutputTokens int32
}

// Config holds configuration for LLM clients
type Config struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}
