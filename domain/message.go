// Package domain defines the core domain models for census chat.
package domain

// Message roles. Role alternation is not enforced; in practice the visible
// history alternates user/assistant.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a session's conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
