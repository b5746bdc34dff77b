package dtos

// Response is the envelope used by the service's own endpoints (health check).
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *string     `json:"error,omitempty"`
}

// ErrorResponse is returned by the query API on failure. RawResponse is only
// set when the model answered with something that is not a usable query.
type ErrorResponse struct {
	Error       string  `json:"error"`
	RawResponse *string `json:"rawResponse,omitempty"`
}
