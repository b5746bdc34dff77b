package services

import (
	"bytes"
	"encoding/json"
	"neuraledit-ai/internal/constants"
	"strings"
)

// PromptInput carries everything the prompt template is filled with.
type PromptInput struct {
	TableName          string
	TableDescription   string
	Columns            []string
	ColumnDescriptions map[string]string
	SampleData         []json.RawMessage
	UserPrompt         string
}

// BuildPrompt fills the query prompt template. The substitution is a single
// pass, so placeholder-like text inside user input is left untouched.
func BuildPrompt(input PromptInput) string {
	replacer := strings.NewReplacer(
		constants.PlaceholderTableName, input.TableName,
		constants.PlaceholderTableDescription, input.TableDescription,
		constants.PlaceholderColumnInfo, FormatColumnInfo(input.Columns, input.ColumnDescriptions),
		constants.PlaceholderSampleData, FormatSampleData(input.SampleData),
		constants.PlaceholderUserPrompt, input.UserPrompt,
	)
	return replacer.Replace(constants.QueryPromptTemplate)
}

// FormatColumnInfo renders one "- [column]: description" line per column, in order.
func FormatColumnInfo(columns []string, descriptions map[string]string) string {
	lines := make([]string, 0, len(columns))
	for _, column := range columns {
		lines = append(lines, "- ["+column+"]: "+descriptions[column])
	}
	return strings.Join(lines, "\n")
}

// FormatSampleData renders at most MaxSampleRows rows as a JSON array indented
// by two spaces. Row bytes are re-indented rather than re-encoded, which keeps
// each row's key order and leaves non-ASCII text unescaped.
func FormatSampleData(rows []json.RawMessage) string {
	if len(rows) > constants.MaxSampleRows {
		rows = rows[:constants.MaxSampleRows]
	}
	if len(rows) == 0 {
		return "[]"
	}

	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = string(row)
	}
	array := "[" + strings.Join(parts, ",") + "]"

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(array), "", "  "); err != nil {
		return array
	}
	return out.String()
}
