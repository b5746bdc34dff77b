package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a provider is configured without a credential.
var ErrMissingAPIKey = errors.New("API key is required")

// GenerationError reports a failed call to the generation backend: the backend
// was unreachable, rejected the credential, timed out or answered with
// something that carries no text.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s generation failed", e.Provider)
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the generation was abandoned because its deadline expired.
func (e *GenerationError) IsTimeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

func newGenerationError(provider string, err error) *GenerationError {
	return &GenerationError{Provider: provider, Err: err}
}
