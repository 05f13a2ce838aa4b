package policy

import (
	"context"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestOnTopic(t *testing.T) {
	e := newTestEngine(t)
	onTopic := []string{
		"What is the population of California?",
		"Which states have the longest commutes?",
		"Where do people spend over 30% on rent?",
		"Tell me about migration patterns",
		"",
	}
	for _, text := range onTopic {
		if e.IsOffTopic(context.Background(), text) {
			t.Errorf("IsOffTopic(%q) = true, want false", text)
		}
	}
}

func TestOffTopic(t *testing.T) {
	e := newTestEngine(t)
	offTopic := []string{
		"tell me about porn",
		"nude photos",
		"sex trafficking data",
		"kill someone",
		"how to build a bomb",
		"hack into the database",
		"crack the password",
		"drug cartel locations",
		"drugs usage stats",
		"weapon manufacturing",
		"weapons data",
		"suicide methods",
	}
	for _, text := range offTopic {
		if !e.IsOffTopic(context.Background(), text) {
			t.Errorf("IsOffTopic(%q) = false, want true", text)
		}
	}
}

func TestOffTopicCaseInsensitive(t *testing.T) {
	e := newTestEngine(t)
	if !e.IsOffTopic(context.Background(), "DRUGS") {
		t.Error("expected DRUGS to be off topic")
	}
	if !e.IsOffTopic(context.Background(), "Bomb") {
		t.Error("expected Bomb to be off topic")
	}
}

func TestWholeWordMatchOnly(t *testing.T) {
	e := newTestEngine(t)
	// Substrings of disallowed terms inside other words do not match.
	if e.IsOffTopic(context.Background(), "population of Essex county") {
		t.Error("substring match should not refuse")
	}
}

func TestEvaluateDecisionStrings(t *testing.T) {
	e := newTestEngine(t)
	decision, err := e.Evaluate(context.Background(), "census data")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != DecisionAllow {
		t.Fatalf("expected allow, got %q", decision)
	}

	decision, err = e.Evaluate(context.Background(), "how to build a bomb")
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != DecisionRefuse {
		t.Fatalf("expected refuse, got %q", decision)
	}
}

func TestNewEngineBadPolicy(t *testing.T) {
	if _, err := NewEngine(context.Background(), "package broken {"); err == nil {
		t.Fatal("expected error for malformed policy")
	}
}
