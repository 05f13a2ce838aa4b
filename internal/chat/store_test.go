package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/vincenth777/census-chat/domain"
)

func TestStoreGetCreatesEmpty(t *testing.T) {
	s := NewStore()
	messages := s.Get("s1")
	if len(messages) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(messages))
	}
}

func TestStoreAppendAndGet(t *testing.T) {
	s := NewStore()
	s.Append("s1", domain.Message{Role: domain.RoleUser, Content: "hello"})
	s.Append("s1", domain.Message{Role: domain.RoleAssistant, Content: "hi"})

	messages := s.Get("s1")
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Content != "hello" || messages[1].Content != "hi" {
		t.Fatalf("unexpected history: %+v", messages)
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("s1", domain.Message{Role: domain.RoleUser, Content: "hello"})

	messages := s.Get("s1")
	messages[0].Content = "mutated"

	if got := s.Get("s1"); got[0].Content != "hello" {
		t.Fatalf("store history mutated through returned slice: %+v", got)
	}
}

func TestStoreSessionsIndependent(t *testing.T) {
	s := NewStore()
	s.Append("s1", domain.Message{Role: domain.RoleUser, Content: "one"})
	s.Append("s2", domain.Message{Role: domain.RoleUser, Content: "two"})

	if got := s.Get("s1"); len(got) != 1 || got[0].Content != "one" {
		t.Fatalf("unexpected s1 history: %+v", got)
	}
	if got := s.Get("s2"); len(got) != 1 || got[0].Content != "two" {
		t.Fatalf("unexpected s2 history: %+v", got)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Append("s1", domain.Message{Role: domain.RoleUser, Content: "hello"})
	s.Clear("s1")
	if got := s.Get("s1"); len(got) != 0 {
		t.Fatalf("expected cleared history, got %+v", got)
	}

	// Clearing an unknown session is fine.
	s.Clear("never-seen")
}

func TestStoreConcurrentSessions(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("s%d", i)
			for j := 0; j < 50; j++ {
				s.Append(sid, domain.Message{Role: domain.RoleUser, Content: "m"})
				s.Get(sid)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		if got := s.Get(fmt.Sprintf("s%d", i)); len(got) != 50 {
			t.Fatalf("session s%d has %d messages, want 50", i, len(got))
		}
	}
}
