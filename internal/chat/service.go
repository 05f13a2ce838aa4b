// Package chat implements the query/summarize orchestration loop: the state
// machine that drives repeated rounds of ask-model, extract SQL, classify,
// execute, feed back, until a plain-text answer is produced or the round
// budget runs out.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vincenth777/census-chat/domain"
	"github.com/vincenth777/census-chat/internal/llm"
	"github.com/vincenth777/census-chat/internal/sqlblock"
	"github.com/vincenth777/census-chat/internal/sqlguard"
	"github.com/vincenth777/census-chat/internal/warehouse"
	"github.com/vincenth777/census-chat/policy"
)

// Fixed user-facing texts.
const (
	RefusalMessage = "I can only answer questions about US Census and population data. " +
		"Please ask something related to demographics, housing, commuting, " +
		"migration, or language statistics."
	BlockedMessage   = "That query was blocked for safety reasons. I can only run SELECT queries."
	ExhaustedMessage = "I had trouble completing that query. Could you try rephrasing your question?"
)

// turnState tracks where the orchestration loop is within a single turn.
type turnState int

const (
	stateAwaitingModel turnState = iota
	statePendingSQL
	stateDone
	stateExhausted
)

// Service owns the orchestration loop and the conversation store.
type Service struct {
	store     *Store
	generator llm.Generator
	warehouse *warehouse.Pool
	guardrail *policy.Engine
	maxRounds int
	rowCap    int
}

// NewService wires the loop's collaborators together.
func NewService(store *Store, generator llm.Generator, wh *warehouse.Pool, guardrail *policy.Engine, maxRounds, rowCap int) *Service {
	if maxRounds <= 0 {
		maxRounds = 5
	}
	return &Service{
		store:     store,
		generator: generator,
		warehouse: wh,
		guardrail: guardrail,
		maxRounds: maxRounds,
		rowCap:    rowCap,
	}
}

// History returns a copy of the session's visible conversation.
func (s *Service) History(sessionID string) []domain.Message {
	return s.store.Get(sessionID)
}

// ClearSession discards the session's conversation. Idempotent.
func (s *Service) ClearSession(sessionID string) {
	s.store.Clear(sessionID)
}

// HandleTurn resolves one user message into an ordered sequence of steps.
// The sequence always terminates in exactly one answer or error step.
func (s *Service) HandleTurn(ctx context.Context, sessionID, userText string) []domain.Step {
	steps := make([]domain.Step, 0, 4)
	s.handleTurn(ctx, sessionID, userText, func(step domain.Step) {
		steps = append(steps, step)
	})
	return steps
}

// HandleTurnStream behaves like HandleTurn but hands each step to emit as
// soon as it is produced, in the same order HandleTurn would return them.
func (s *Service) HandleTurnStream(ctx context.Context, sessionID, userText string, emit func(domain.Step)) {
	s.handleTurn(ctx, sessionID, userText, emit)
}

func (s *Service) handleTurn(ctx context.Context, sessionID, userText string, emit func(domain.Step)) {
	// Guardrail short-circuit: the model is never invoked.
	if s.guardrail.IsOffTopic(ctx, userText) {
		emit(domain.Step{Type: domain.StepAnswer, Content: RefusalMessage})
		return
	}

	s.store.Append(sessionID, domain.Message{Role: domain.RoleUser, Content: userText})

	t := &turn{
		svc:       s,
		sessionID: sessionID,
		emit:      emit,
		// The model-facing sequence starts as a clone of the visible
		// history and diverges once synthetic feedback is injected. It is
		// rebuilt from the visible history at the start of every turn.
		model: s.store.Get(sessionID),
	}

	for state := stateAwaitingModel; ; {
		switch state {
		case stateAwaitingModel:
			state = t.invokeModel(ctx)
		case statePendingSQL:
			state = t.executeCandidates(ctx)
		case stateDone, stateExhausted:
			return
		}
	}
}

// turn carries the ephemeral control-flow state of one user turn.
type turn struct {
	svc       *Service
	sessionID string
	emit      func(domain.Step)

	model    []domain.Message
	round    int
	response string
	sql      []string
}

// invokeModel performs one model call and classifies the response. A
// response without SQL is the final answer; a model failure terminates the
// turn immediately.
func (t *turn) invokeModel(ctx context.Context) turnState {
	if t.round >= t.svc.maxRounds {
		t.emit(domain.Step{Type: domain.StepError, Content: ExhaustedMessage})
		return stateExhausted
	}
	t.round++

	response, err := t.svc.generator.Generate(ctx, t.model)
	if err != nil {
		t.emit(domain.Step{Type: domain.StepError, Content: err.Error()})
		return stateDone
	}
	t.response = response
	t.sql = sqlblock.Extract(response)

	if len(t.sql) == 0 {
		t.emit(domain.Step{Type: domain.StepAnswer, Content: response})
		t.svc.store.Append(t.sessionID, domain.Message{Role: domain.RoleAssistant, Content: response})
		return stateDone
	}

	t.emit(domain.Step{Type: domain.StepLLMResponse, Content: response})
	t.svc.store.Append(t.sessionID, domain.Message{Role: domain.RoleAssistant, Content: response})
	return statePendingSQL
}

// executeCandidates gates and runs each extracted candidate in extraction
// order, then splices the combined results into the model-facing sequence
// only. The visible history never sees the synthetic feedback.
func (t *turn) executeCandidates(ctx context.Context) turnState {
	resultTexts := make([]string, 0, len(t.sql))
	for _, candidate := range t.sql {
		if !sqlguard.IsSafeSQL(candidate) {
			t.emit(domain.Step{Type: domain.StepQueryError, Content: BlockedMessage})
			resultTexts = append(resultTexts, BlockedMessage)
			continue
		}

		result, err := t.svc.warehouse.Query(ctx, candidate, t.svc.rowCap)
		if err != nil {
			t.emit(domain.Step{Type: domain.StepQueryError, Content: err.Error()})
			resultTexts = append(resultTexts, "Query error: "+err.Error())
			continue
		}

		t.emit(domain.Step{Type: domain.StepQueryResult, Content: result})
		resultTexts = append(resultTexts, renderRows(result))
	}

	t.model = append(t.model,
		domain.Message{Role: domain.RoleAssistant, Content: t.response},
		domain.Message{Role: domain.RoleUser, Content: feedbackMessage(resultTexts)},
	)
	return stateAwaitingModel
}

// renderRows produces the textual form of a result fed back to the model.
func renderRows(result *warehouse.Result) string {
	b, err := json.Marshal(result.Rows)
	if err != nil {
		return fmt.Sprintf("%v", result.Rows)
	}
	return string(b)
}

func feedbackMessage(resultTexts []string) string {
	var b strings.Builder
	b.WriteString("Here are the query results:\n\n")
	for i, text := range resultTexts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Query result %d:\n%s", i+1, text)
	}
	b.WriteString("\n\nPlease summarize these results in a clear, conversational way " +
		"to answer the user's question. Do not output any more SQL.")
	return b.String()
}
