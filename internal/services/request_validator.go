package services

import "neuraledit-ai/internal/apis/dtos"

// ValidateQueryRequest checks that prompt, tableName and columns are present.
// Presence is all that is checked: an empty prompt or an empty column list is
// accepted. The same error is returned whichever field is missing.
func ValidateQueryRequest(req *dtos.GenerateQueryRequest) error {
	if req == nil || req.Prompt == nil || req.TableName == nil || req.Columns == nil {
		return ErrMissingParameters
	}
	return nil
}
