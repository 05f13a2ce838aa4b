// Package policy provides the topic guardrail for incoming chat messages.
package policy

import (
	"context"
	"fmt"
	"log"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions the topic policy may return.
const (
	DecisionAllow  = "allow"
	DecisionRefuse = "refuse"
)

// Engine evaluates the topic policy over user utterances. It is the first
// line of defense; the SQL safety classifier remains the execution gate.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine prepares a policy engine with the given rego policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.censuschat.topic.decision"),
		rego.Module("topic_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate returns the policy decision ("allow" or "refuse") for text.
func (e *Engine) Evaluate(ctx context.Context, text string) (string, error) {
	input := map[string]interface{}{"text": text}
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// IsOffTopic reports whether the utterance falls outside the supported
// census domain. Evaluation failures allow the turn through; the model's
// own instructions and the SQL gate still apply.
func (e *Engine) IsOffTopic(ctx context.Context, text string) bool {
	decision, err := e.Evaluate(ctx, text)
	if err != nil {
		log.Printf("ERROR: topic policy evaluation failed: %v", err)
		return false
	}
	return decision == DecisionRefuse
}

// DefaultPolicy refuses any utterance containing a disallowed term as a
// whole word, case-insensitive. Coarse on purpose: unmatched off-topic
// phrasing is accepted and handled by the model's instructions instead.
const DefaultPolicy = `
package censuschat.topic

default decision = "allow"

decision = "refuse" {
	regex.match("(?i)\\b(porn|nude|sex|kill|bomb|hack|crack|drugs?|weapons?|suicide)\\b", input.text)
}
`
