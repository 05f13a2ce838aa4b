// Package llm provides the model capability used by the orchestration loop.
package llm

import (
	"context"

	"github.com/vincenth777/census-chat/domain"
)

// Generator produces one assistant response for a conversation.
type Generator interface {
	Generate(ctx context.Context, messages []domain.Message) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, messages []domain.Message) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, messages []domain.Message) (string, error) {
	return f(ctx, messages)
}
