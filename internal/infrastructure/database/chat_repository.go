package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// chatRepository is the GORM implementation of ChatRepository.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository instance.
func NewChatRepository(db *gorm.DB) domain.ChatRepository {
	return &chatRepository{db: db}
}

// SaveMessage appends one message and returns it with its assigned ID.
func (r *chatRepository) SaveMessage(ctx context.Context, message *entity.ChatMessage) (*entity.ChatMessage, error) {
	m := ChatMemoryModel{
		SessionID: message.SessionID,
		Role:      message.Role,
		Message:   message.Message,
		Timestamp: message.Timestamp,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}

	return toChatMessageEntity(&m)
}

// GetSessionHistory returns a session's messages oldest first, capped
// at limit when limit > 0. Equal timestamps (a user/assistant pair
// shares one instant) are tie-broken by id to keep insertion order.
func (r *chatRepository) GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error) {
	q := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []ChatMemoryModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}
	return toChatMessageEntities(models)
}

// GetRecentMessages fetches the newest count rows and reverses them in
// memory so callers always receive chronological order.
func (r *chatRepository) GetRecentMessages(ctx context.Context, sessionID string, count int) ([]*entity.ChatMessage, error) {
	var models []ChatMemoryModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(count).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}

	result, err := toChatMessageEntities(models)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

// DeleteSessionHistory removes every message of a session and returns
// how many rows were deleted. Unknown sessions delete 0 rows.
func (r *chatRepository) DeleteSessionHistory(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&ChatMemoryModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete session history: %w", res.Error)
	}
	return res.RowsAffected, nil
}
