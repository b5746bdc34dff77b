package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rawRows(rows ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(rows))
	for i, row := range rows {
		out[i] = json.RawMessage(row)
	}
	return out
}

func TestFormatColumnInfo(t *testing.T) {
	tests := []struct {
		name         string
		columns      []string
		descriptions map[string]string
		expected     string
	}{
		{
			name:         "description for some columns",
			columns:      []string{"id", "name"},
			descriptions: map[string]string{"id": "primary key"},
			expected:     "- [id]: primary key\n- [name]: ",
		},
		{
			name:         "nil descriptions",
			columns:      []string{"age"},
			descriptions: nil,
			expected:     "- [age]: ",
		},
		{
			name:         "input order is kept",
			columns:      []string{"z", "a", "m"},
			descriptions: map[string]string{"a": "first letter", "z": "last letter"},
			expected:     "- [z]: last letter\n- [a]: first letter\n- [m]: ",
		},
		{
			name:     "no columns",
			columns:  []string{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatColumnInfo(tt.columns, tt.descriptions))
		})
	}
}

func TestFormatSampleData(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "[]", FormatSampleData(nil))
		assert.Equal(t, "[]", FormatSampleData([]json.RawMessage{}))
	})

	t.Run("indented with two spaces", func(t *testing.T) {
		expected := "[\n  {\n    \"id\": 1,\n    \"age\": 25\n  }\n]"
		assert.Equal(t, expected, FormatSampleData(rawRows(`{"id":1,"age":25}`)))
	})

	t.Run("key order of each row is kept", func(t *testing.T) {
		out := FormatSampleData(rawRows(`{"zeta": 1, "alpha": 2}`))
		assert.Less(t, strings.Index(out, `"zeta"`), strings.Index(out, `"alpha"`))
	})

	t.Run("non ascii and html characters are not escaped", func(t *testing.T) {
		out := FormatSampleData(rawRows(`{"name":"김철수 <admin> & co"}`))
		assert.Contains(t, out, `"name": "김철수 <admin> & co"`)
	})

	t.Run("truncated to first five rows in order", func(t *testing.T) {
		rows := make([]string, 7)
		for i := range rows {
			rows[i] = fmt.Sprintf(`{"id":%d}`, i+1)
		}

		out := FormatSampleData(rawRows(rows...))

		for i := 1; i <= 5; i++ {
			assert.Contains(t, out, fmt.Sprintf(`"id": %d`, i))
		}
		assert.NotContains(t, out, `"id": 6`)
		assert.NotContains(t, out, `"id": 7`)
		assert.Less(t, strings.Index(out, `"id": 1`), strings.Index(out, `"id": 5`))
	})

	t.Run("nested values", func(t *testing.T) {
		expected := "[\n  {\n    \"tags\": [\n      \"a\",\n      \"b\"\n    ],\n    \"meta\": {}\n  }\n]"
		assert.Equal(t, expected, FormatSampleData(rawRows(`{"tags":["a","b"],"meta":{}}`)))
	})
}

func TestBuildPrompt(t *testing.T) {
	input := PromptInput{
		TableName:          "users",
		TableDescription:   "registered users",
		Columns:            []string{"id", "age"},
		ColumnDescriptions: map[string]string{"id": "primary key"},
		SampleData:         rawRows(`{"id":1,"age":25}`),
		UserPrompt:         "list all users older than 30",
	}

	prompt := BuildPrompt(input)

	assert.Contains(t, prompt, "테이블 이름: users\n")
	assert.Contains(t, prompt, "테이블 설명: registered users\n")
	assert.Contains(t, prompt, "### 칼럼 정보\n- [id]: primary key\n- [age]: \n")
	assert.Contains(t, prompt, "### 샘플 데이터\n[\n  {\n    \"id\": 1,\n    \"age\": 25\n  }\n]\n")
	assert.Contains(t, prompt, "### 사용자 요청\nlist all users older than 30\n")
	assert.NotContains(t, prompt, "{table_name}")
	assert.NotContains(t, prompt, "{sample_data}")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	input := PromptInput{
		TableName:          "orders",
		Columns:            []string{"id", "total", "status"},
		ColumnDescriptions: map[string]string{"total": "amount in KRW", "status": "order state", "id": "pk"},
		SampleData:         rawRows(`{"id":1,"total":1000,"status":"paid"}`, `{"id":2,"total":2500,"status":"refunded"}`),
		UserPrompt:         "total of paid orders",
	}

	first := BuildPrompt(input)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt(input))
	}
}

func TestBuildPrompt_PlaceholdersInUserInputAreNotExpanded(t *testing.T) {
	prompt := BuildPrompt(PromptInput{
		TableName:  "{user_prompt}",
		Columns:    []string{"id"},
		UserPrompt: "show {table_name}",
	})

	assert.Contains(t, prompt, "테이블 이름: {user_prompt}\n")
	assert.Contains(t, prompt, "### 사용자 요청\nshow {table_name}\n")
}
