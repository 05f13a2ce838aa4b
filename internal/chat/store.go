package chat

import (
	"sync"

	"github.com/vincenth777/census-chat/domain"
)

// Store keeps per-session conversation history in process memory. Sessions
// are deliberately volatile: nothing survives a restart, and Clear is the
// only way to end one early.
type Store struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Message
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{conversations: make(map[string][]domain.Message)}
}

// Get returns a copy of the session's messages, creating the session on
// first access.
func (s *Store) Get(sessionID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[sessionID]; !ok {
		s.conversations[sessionID] = []domain.Message{}
	}
	messages := s.conversations[sessionID]
	out := make([]domain.Message, len(messages))
	copy(out, messages)
	return out
}

// Append adds a message to the session's history.
func (s *Store) Append(sessionID string, msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[sessionID] = append(s.conversations[sessionID], msg)
}

// Clear discards the session's history. Clearing an unknown session is a
// no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, sessionID)
}
