package domain

import (
	"context"
	"time"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// ChatResult is the response envelope of one chat turn.
type ChatResult struct {
	SessionID        string
	UserMessage      string
	AssistantMessage string
	Timestamp        time.Time
}

// LLMClient generates assistant replies from the catalog and the
// session context. GenerateReply never fails: transport, quota and
// model errors are converted into a user-safe reply string inside the
// client, so the orchestration error path stays reserved for storage
// and validation failures.
type LLMClient interface {
	GenerateReply(ctx context.Context, userMessage string, products []*entity.Product, chatCtx *entity.ChatContext) string
}

// ChatUsecase drives the chat conversation flow.
type ChatUsecase interface {
	// HandleMessage processes one user turn: it primes the model with
	// the catalog and recent history, persists the user and assistant
	// messages and returns the response envelope.
	HandleMessage(ctx context.Context, sessionID, message string) (*ChatResult, error)

	// GetHistory returns a session's messages oldest first, capped at
	// limit when limit > 0.
	GetHistory(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error)

	// ClearHistory purges a session and returns the number of
	// messages removed.
	ClearHistory(ctx context.Context, sessionID string) (int64, error)
}

// ProductUsecase exposes the catalog read and write use cases.
type ProductUsecase interface {
	// List returns products, optionally filtered by exact brand or
	// category. Empty filters return the whole catalog.
	List(ctx context.Context, brand, category string) ([]*entity.Product, error)

	// Get returns one product or a not-found error.
	Get(ctx context.Context, id int64) (*entity.Product, error)

	// Create inserts a new product and returns it with its ID.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Update overwrites the product stored under id.
	Update(ctx context.Context, id int64, product *entity.Product) (*entity.Product, error)

	// Delete removes a product or returns a not-found error.
	Delete(ctx context.Context, id int64) error
}
