package domain

// StepType classifies one observable unit of progress within a turn.
type StepType string

const (
	StepAnswer      StepType = "answer"
	StepLLMResponse StepType = "llm_response"
	StepQueryResult StepType = "query_result"
	StepQueryError  StepType = "query_error"
	StepError       StepType = "error"
)

// Step is one observable unit of progress surfaced to the caller while a
// turn resolves. A turn's step sequence always ends in exactly one answer
// or error step. Content is text for every type except query_result, which
// carries the result rows.
type Step struct {
	Type    StepType `json:"type"`
	Content any      `json:"content"`
}
