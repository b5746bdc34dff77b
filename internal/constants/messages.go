package constants

// User-facing messages returned by the query API.
const (
	MissingParametersMessage = "필수 매개변수(prompt, tableName, columns)가 누락되었습니다."
	InvalidQueryMessage      = "유효한 SQL 쿼리가 생성되지 않았습니다."
	ExplanationTemplate      = "자연어 요청 '%s'에 대해 생성된 SQL 쿼리입니다."
)

// AllowedStatementPrefixes are the keywords a generated query may start with.
var AllowedStatementPrefixes = []string{"select", "insert", "update", "delete"}
