package services

import "neuraledit-ai/internal/constants"

// ValidationError is a rejected request body. No generation call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrMissingParameters is returned when prompt, tableName or columns is absent.
var ErrMissingParameters = &ValidationError{Message: constants.MissingParametersMessage}

// QuerySyntaxRejection means the model answered, but the sanitized answer does
// not start with a supported statement keyword.
type QuerySyntaxRejection struct {
	Message     string
	RawResponse string
}

func (e *QuerySyntaxRejection) Error() string {
	return e.Message
}

func newQuerySyntaxRejection(sanitized string) *QuerySyntaxRejection {
	return &QuerySyntaxRejection{
		Message:     constants.InvalidQueryMessage,
		RawResponse: sanitized,
	}
}
