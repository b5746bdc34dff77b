package llm

import (
	"context"
	"errors"
	"fmt"
	"neuraledit-ai/internal/constants"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client          *genai.Client
	model           string
	temperature     float32
	topP            float32
	topK            int32
	maxOutputTokens int32
}

func NewGeminiClient(config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	// Create the Gemini SDK client using the provided API key.
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = constants.GeminiModel
	}

	return &GeminiClient{
		client:          client,
		model:           model,
		temperature:     config.Temperature,
		topP:            config.TopP,
		topK:            config.TopK,
		maxOutputTokens: config.MaxOutputTokens,
	}, nil
}

// GenerateContent sends prompt as the only message of a fresh chat session.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SetTopP(c.topP)
	model.SetTopK(c.topK)
	model.SetMaxOutputTokens(c.maxOutputTokens)

	session := model.StartChat()
	result, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", newGenerationError(constants.Gemini, fmt.Errorf("gemini API error: %w", err))
	}

	text, err := geminiResponseText(result)
	if err != nil {
		return "", newGenerationError(constants.Gemini, err)
	}
	return text, nil
}

// GetModelInfo returns information about the Gemini model.
func (c *GeminiClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:            c.model,
		Provider:        constants.Gemini,
		MaxOutputTokens: c.maxOutputTokens,
	}
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// geminiResponseText concatenates the text parts of the first candidate.
func geminiResponseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("no response from gemini")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("gemini returned an empty candidate (finish reason: %v)", candidate.FinishReason)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini response contains no text")
	}
	return sb.String(), nil
}
