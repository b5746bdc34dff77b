package llm

import (
	"context"
	"errors"
	"fmt"
	"neuraledit-ai/internal/constants"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to the chat completions API. The API has no top-k knob,
// so Config.TopK is ignored.
type OpenAIClient struct {
	client          *openai.Client
	model           string
	temperature     float32
	topP            float32
	maxOutputTokens int32
}

func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &OpenAIClient{
		client:          openai.NewClientWithConfig(clientConfig),
		model:           model,
		temperature:     config.Temperature,
		topP:            config.TopP,
		maxOutputTokens: config.MaxOutputTokens,
	}, nil
}

func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   int(c.maxOutputTokens),
		Temperature: c.temperature,
		TopP:        c.topP,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", newGenerationError(constants.OpenAI, fmt.Errorf("OpenAI API error: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", newGenerationError(constants.OpenAI, errors.New("no response from OpenAI"))
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:            c.model,
		Provider:        constants.OpenAI,
		MaxOutputTokens: c.maxOutputTokens,
	}
}
