package services

import (
	"neuraledit-ai/internal/constants"
	"strings"
	"unicode"
)

const (
	codeFence   = "```"
	languageTag = "sql"
)

// SanitizeResponse removes markdown artifacts from model output: every code
// fence, then any leading "sql" language tag line, then surrounding whitespace.
// Applying it twice gives the same result as applying it once.
func SanitizeResponse(raw string) string {
	text := strings.ReplaceAll(raw, codeFence, "")
	for {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
		rest, ok := stripLanguageTag(text)
		if !ok {
			break
		}
		text = rest
	}
	return strings.TrimSpace(text)
}

// stripLanguageTag removes a leading "sql" (any case) that is immediately followed by a line break.
func stripLanguageTag(text string) (string, bool) {
	if len(text) < len(languageTag) || !strings.EqualFold(text[:len(languageTag)], languageTag) {
		return text, false
	}
	rest := text[len(languageTag):]
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		return rest[2:], true
	case strings.HasPrefix(rest, "\n"):
		return rest[1:], true
	}
	return text, false
}

// HasStatementPrefix reports whether query starts, ignoring case, with one of
// the supported statement keywords.
func HasStatementPrefix(query string) bool {
	lowered := strings.ToLower(query)
	for _, prefix := range constants.AllowedStatementPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

// SanitizeQuery sanitizes raw model output and checks the statement keyword.
// On rejection the sanitized text is carried in the returned QuerySyntaxRejection.
func SanitizeQuery(raw string) (string, error) {
	query := SanitizeResponse(raw)
	if !HasStatementPrefix(query) {
		return "", newQuerySyntaxRejection(query)
	}
	return query, nil
}
