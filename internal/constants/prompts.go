package constants

// Placeholders substituted into QueryPromptTemplate.
const (
	PlaceholderTableName        = "{table_name}"
	PlaceholderTableDescription = "{table_description}"
	PlaceholderColumnInfo       = "{column_info}"
	PlaceholderSampleData       = "{sample_data}"
	PlaceholderUserPrompt       = "{user_prompt}"
)

// MaxSampleRows is the number of sample rows included in a prompt.
const MaxSampleRows = 5

const QueryPromptTemplate = `
당신은 자연어를 SQL 쿼리로 변환하는 전문가입니다.
사용자의 요청을 분석하여 알맞은 SQL 쿼리를 생성해주세요.
답변이 바로 SQL로 사용되므로 필요없는 문장 / 식별자는 답변에 넣지 않아야함에 주의해주세요

### 테이블 정보
테이블 이름: {table_name}
테이블 설명: {table_description}

### 칼럼 정보
{column_info}

### 샘플 데이터
{sample_data}

### 사용자 요청
{user_prompt}

다음 규칙을 무조건 지켜주세요:
1. 테이블 이름과 칼럼 이름은 대괄호([])로 감싸주세요. 예: SELECT [column1] FROM [table] WHERE [Column2] = '3'
2. alasql 구문을 사용해야 합니다. ANSI SQL과 호환되는 기본 SQL 구문을 사용해주세요.
3. 쿼리만 출력하세요. ` + "```" + `sql 같은 코드 블록 표시를 포함시키지 말고, 설명이나 추가 텍스트는 포함하지 마세요. 답변 예시: SELECT [column1] FROM [table]
4. 모든 테이블 및 칼럼 이름은 소문자로 처리되므로 그에 맞게 쿼리를 작성하세요.
5. 제공하는 답변이 바로 쿼리로 실행됩니다. 답변 앞에 sql 같은 단어를 넣지 마세요.

`
