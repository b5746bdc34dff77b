package llm

import "context"

// unavailableClient stands in for a provider that could not be constructed at
// startup, typically because its API key is missing. Every call fails.
type unavailableClient struct {
	provider string
	cause    error
}

func NewUnavailableClient(provider string, cause error) Client {
	return &unavailableClient{provider: provider, cause: cause}
}

func (c *unavailableClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return "", newGenerationError(c.provider, c.cause)
}

func (c *unavailableClient) GetModelInfo() ModelInfo {
	return ModelInfo{Provider: c.provider}
}
