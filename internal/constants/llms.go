package constants

import "time"

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

// Generation settings are fixed for the deployment and never taken from requests.
const (
	GeminiModel        = "gemini-2.0-flash"
	LLMTemperature     = 0.55
	LLMTopP            = 0.95
	LLMTopK            = 40
	LLMMaxOutputTokens = 12000
)

const DefaultLLMTimeout = 60 * time.Second
