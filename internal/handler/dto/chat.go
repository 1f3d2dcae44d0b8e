package dto

import (
	"time"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// ChatRequest is one user turn.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse echoes the turn together with the generated reply.
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

// FromChatResult converts the usecase envelope to its wire shape.
func FromChatResult(r *domain.ChatResult) *ChatResponse {
	return &ChatResponse{
		SessionID:        r.SessionID,
		UserMessage:      r.UserMessage,
		AssistantMessage: r.AssistantMessage,
		Timestamp:        r.Timestamp,
	}
}

// FromChatMessages converts a history slice, never returning nil so
// empty sessions serialize as [].
func FromChatMessages(messages []*entity.ChatMessage) []*ChatHistoryItem {
	out := make([]*ChatHistoryItem, 0, len(messages))
	for _, m := range messages {
		out = append(out, &ChatHistoryItem{
			ID:        m.ID,
			Role:      m.Role,
			Message:   m.Message,
			Timestamp: m.Timestamp,
		})
	}
	return out
}
