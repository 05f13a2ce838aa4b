package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/vincenth777/census-chat/domain"
)

// MockGenerator is a canned Generator for running the server without an
// API key.
type MockGenerator struct{}

// NewMockGenerator creates a new mock generator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Ensure MockGenerator implements Generator.
var _ Generator = (*MockGenerator)(nil)

// Generate returns a canned response based on the last user message.
func (m *MockGenerator) Generate(ctx context.Context, messages []domain.Message) (string, error) {
	var last string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			last = messages[i].Content
			break
		}
	}

	// A feedback round: pretend to summarize the results.
	if strings.Contains(last, "Here are the query results") {
		return "[MOCK] Based on the query results above, here is a summary of the census data you asked about.", nil
	}

	if last == "" {
		return "[MOCK] This is a mock response.", nil
	}
	return fmt.Sprintf("[MOCK] Received your question: %q. Configure OPENAI_API_KEY to get real answers.", truncate(last, 100)), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
