package entity

import (
	"strings"
	"time"
)

// Chat message roles. A session only ever contains these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultContextWindow is the number of trailing messages primed into
// the model on each chat turn.
const DefaultContextWindow = 6

// ChatMessage is a single turn inside a chat session. A zero ID means
// the message has not been persisted yet. Messages are immutable once
// created; they are only removed through bulk session deletion.
type ChatMessage struct {
	ID        int64
	SessionID string
	Role      string
	Message   string
	Timestamp time.Time
}

// NewChatMessage builds a validated chat message. The role is
// restricted to RoleUser and RoleAssistant, session id and message
// must be non-blank.
func NewChatMessage(id int64, sessionID, role, message string, timestamp time.Time) (*ChatMessage, error) {
	if role != RoleUser && role != RoleAssistant {
		return nil, newValidationError("invalid role %q", role)
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, newValidationError("session_id must not be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, newValidationError("message must not be empty")
	}

	return &ChatMessage{
		ID:        id,
		SessionID: sessionID,
		Role:      role,
		Message:   message,
		Timestamp: timestamp,
	}, nil
}

// ChatContext is a per-request view over the prior messages of a
// session. It is never persisted.
type ChatContext struct {
	Messages    []*ChatMessage
	MaxMessages int
}

// NewChatContext wraps an oldest-first message history with the
// default window size.
func NewChatContext(messages []*ChatMessage) *ChatContext {
	return &ChatContext{
		Messages:    messages,
		MaxMessages: DefaultContextWindow,
	}
}

// RecentMessages returns the trailing window of at most MaxMessages
// messages, oldest first.
func (c *ChatContext) RecentMessages() []*ChatMessage {
	if len(c.Messages) <= c.MaxMessages {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-c.MaxMessages:]
}

// FormatForPrompt renders the trailing window as plain text, one line
// per message. The speaker labels are part of the prompt contract.
func (c *ChatContext) FormatForPrompt() string {
	lines := make([]string, 0, c.MaxMessages)
	for _, m := range c.RecentMessages() {
		who := "Asistente"
		if m.Role == RoleUser {
			who = "Usuario"
		}
		lines = append(lines, who+": "+m.Message)
	}
	return strings.Join(lines, "\n")
}
