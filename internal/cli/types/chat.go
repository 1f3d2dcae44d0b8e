package types

import "time"

// ChatRequest is one user turn.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse echoes the turn with the assistant's reply.
type ChatResponse struct {
	SessionID        string    `json:"session_id"`
	UserMessage      string    `json:"user_message"`
	AssistantMessage string    `json:"assistant_message"`
	Timestamp        time.Time `json:"timestamp"`
}

// ChatHistoryItem is one persisted message of a session.
type ChatHistoryItem struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DeleteHistoryResponse reports a session purge.
type DeleteHistoryResponse struct {
	SessionID       string `json:"session_id"`
	DeletedMessages int64  `json:"deleted_messages"`
}
