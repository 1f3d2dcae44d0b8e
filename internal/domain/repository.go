package domain

import (
	"context"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// ProductRepository is the storage contract for the catalog.
type ProductRepository interface {
	// GetAll returns every product in storage order.
	GetAll(ctx context.Context) ([]*entity.Product, error)

	// GetByID returns one product, or a not-found error when absent.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)

	// GetByBrand returns the products of one brand (exact match).
	GetByBrand(ctx context.Context, brand string) ([]*entity.Product, error)

	// GetByCategory returns the products of one category (exact match).
	GetByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// Save upserts a product: a set ID overwrites the stored row field
	// by field, an unset ID inserts a new row and assigns its ID.
	Save(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Delete removes a product, reporting whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ChatRepository is the storage contract for chat session history.
type ChatRepository interface {
	// SaveMessage appends one message and returns it with its assigned ID.
	SaveMessage(ctx context.Context, message *entity.ChatMessage) (*entity.ChatMessage, error)

	// GetSessionHistory returns a session's messages oldest first.
	// A limit <= 0 returns the full history.
	GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error)

	// GetRecentMessages returns the most recent count messages of a
	// session, reordered oldest first. Callers always receive
	// chronological order regardless of the internal fetch order.
	GetRecentMessages(ctx context.Context, sessionID string, count int) ([]*entity.ChatMessage, error)

	// DeleteSessionHistory removes every message of a session and
	// returns how many were removed. Unknown sessions delete 0 rows
	// and are not an error.
	DeleteSessionHistory(ctx context.Context, sessionID string) (int64, error)
}
