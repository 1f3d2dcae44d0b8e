package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// chatUsecase is the implementation of the ChatUsecase interface. It
// coordinates the catalog, the session history and the Gemini client
// for each chat turn.
type chatUsecase struct {
	productRepo domain.ProductRepository
	chatRepo    domain.ChatRepository
	llm         domain.LLMClient
	now         func() time.Time
	logger      *slog.Logger
}

// NewChatUsecase creates a new ChatUsecase instance. llm may be nil
// when no Gemini credential is configured; chat turns then fail with a
// chat-service error instead of preventing startup.
func NewChatUsecase(
	productRepo domain.ProductRepository,
	chatRepo domain.ChatRepository,
	llm domain.LLMClient,
	logger *slog.Logger,
) domain.ChatUsecase {
	return &chatUsecase{
		productRepo: productRepo,
		chatRepo:    chatRepo,
		llm:         llm,
		now:         time.Now,
		logger:      logger,
	}
}

// HandleMessage processes one chat turn:
//  1. fetch the full catalog (every row goes into the prompt)
//  2. fetch the 6 most-recent session messages, oldest first
//  3. build the chat context
//  4. ask the model for a reply (the client never raises; transport
//     failures come back as apology text)
//  5. persist the user turn and the assistant turn with one shared
//     timestamp, user first
//
// Any failure along the way is wrapped once into a single descriptive
// chat-service error. There is deliberately no transaction around the
// two writes: when the second save fails the user message stays
// persisted without its paired reply.
func (u *chatUsecase) HandleMessage(ctx context.Context, sessionID, message string) (*domain.ChatResult, error) {
	result, err := u.handleMessage(ctx, sessionID, message)
	if err != nil {
		u.logger.Error("chat turn failed", "session_id", sessionID, "error", err)
		return nil, domain.NewChatServiceError(err)
	}
	return result, nil
}

func (u *chatUsecase) handleMessage(ctx context.Context, sessionID, message string) (*domain.ChatResult, error) {
	if u.llm == nil {
		return nil, fmt.Errorf("gemini client not configured (set GOOGLE_API_KEY or GEMINI_API_KEY)")
	}

	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	history, err := u.chatRepo.GetRecentMessages(ctx, sessionID, entity.DefaultContextWindow)
	if err != nil {
		return nil, err
	}

	chatCtx := entity.NewChatContext(history)

	reply := u.llm.GenerateReply(ctx, message, products, chatCtx)

	now := u.now().UTC()

	userMsg, err := entity.NewChatMessage(0, sessionID, entity.RoleUser, message, now)
	if err != nil {
		return nil, err
	}
	assistantMsg, err := entity.NewChatMessage(0, sessionID, entity.RoleAssistant, reply, now)
	if err != nil {
		return nil, err
	}

	if _, err := u.chatRepo.SaveMessage(ctx, userMsg); err != nil {
		return nil, err
	}
	if _, err := u.chatRepo.SaveMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	u.logger.Info("chat turn completed", "session_id", sessionID, "history_len", len(history))

	return &domain.ChatResult{
		SessionID:        sessionID,
		UserMessage:      message,
		AssistantMessage: reply,
		Timestamp:        now,
	}, nil
}

// GetHistory returns a session's messages oldest first.
func (u *chatUsecase) GetHistory(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error) {
	return u.chatRepo.GetSessionHistory(ctx, sessionID, limit)
}

// ClearHistory purges a session. Unknown sessions report 0 removed.
func (u *chatUsecase) ClearHistory(ctx context.Context, sessionID string) (int64, error) {
	deleted, err := u.chatRepo.DeleteSessionHistory(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	u.logger.Info("session history cleared", "session_id", sessionID, "deleted", deleted)
	return deleted, nil
}
