package dtos

import "encoding/json"

// GenerateQueryRequest is the body of POST /api/generate-query. The required
// fields are pointers so that an explicitly empty value is told apart from a
// missing key.
type GenerateQueryRequest struct {
	Prompt             *string           `json:"prompt" binding:"required"`
	TableName          *string           `json:"tableName" binding:"required"`
	Columns            []string          `json:"columns" binding:"required"`
	TableDescription   string            `json:"tableDescription"`
	ColumnDescriptions map[string]string `json:"columnDescriptions"`
	// Rows are kept raw so their key order survives into the prompt.
	SampleData []json.RawMessage `json:"sampleData"`
}

type GenerateQueryResponse struct {
	Query       string `json:"query"`
	Explanation string `json:"explanation"`
}
