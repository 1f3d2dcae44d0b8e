package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/handler/dto"
)

// Sessions fetch their 10 most recent messages unless the caller asks
// for more.
const defaultHistoryLimit = 10

// ChatHandler serves the conversation endpoints.
type ChatHandler struct {
	usecase domain.ChatUsecase
	logger  *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(usecase domain.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Chat processes one user turn.
//
//	@Summary		Send a chat message
//	@Description	Generates an assistant reply primed with the catalog and recent session history
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChatRequest	true	"Chat turn"
//	@Success		200		{object}	dto.ChatResponse
//	@Failure		400		{object}	handler.ErrorBody
//	@Failure		500		{object}	handler.ErrorBody
//	@Router			/chat [post]
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		BadRequestResponse(c, "invalid request body")
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		BadRequestResponse(c, "session_id must not be empty")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		BadRequestResponse(c, "message must not be empty")
		return
	}

	h.logger.Info("chat request received", "session_id", req.SessionID)

	result, err := h.usecase.HandleMessage(ctx, req.SessionID, req.Message)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromChatResult(result))
}

// History returns a session's messages, oldest first.
//
//	@Summary		Get session history
//	@Tags			chat
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			limit		query		int		false	"Max messages (default 10)"
//	@Success		200			{array}		dto.ChatHistoryItem
//	@Router			/chat/history/{session_id} [get]
func (h *ChatHandler) History(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("session_id")

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			BadRequestResponse(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	messages, err := h.usecase.GetHistory(ctx, sessionID, limit)
	if err != nil {
		h.logger.Error("failed to fetch history", "session_id", sessionID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromChatMessages(messages))
}

// ClearHistory purges a session.
//
//	@Summary		Delete session history
//	@Tags			chat
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	dto.DeleteHistoryResponse
//	@Router			/chat/history/{session_id} [delete]
func (h *ChatHandler) ClearHistory(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("session_id")

	deleted, err := h.usecase.ClearHistory(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to clear history", "session_id", sessionID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.DeleteHistoryResponse{
		SessionID:       sessionID,
		DeletedMessages: deleted,
	})
}
