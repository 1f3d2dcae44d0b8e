package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/infrastructure/gemini"
)

// ModelHandler exposes the Gemini model listing, mostly useful for
// checking the credential and picking a model name.
type ModelHandler struct {
	client *gemini.Client
	logger *slog.Logger
}

// NewModelHandler creates a new ModelHandler. client is nil when no
// API key was configured; listing then fails at request time.
func NewModelHandler(client *gemini.Client, logger *slog.Logger) *ModelHandler {
	return &ModelHandler{
		client: client,
		logger: logger,
	}
}

// List returns the generation-capable models of the configured key.
//
//	@Summary		List available models
//	@Tags			ai
//	@Produce		json
//	@Success		200	{object}	map[string][]gemini.ModelInfo
//	@Failure		500	{object}	handler.ErrorBody
//	@Router			/ai/models [get]
func (h *ModelHandler) List(ctx context.Context, c *app.RequestContext) {
	if h.client == nil {
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "gemini client not configured (set GOOGLE_API_KEY or GEMINI_API_KEY)",
		})
		return
	}

	models, err := h.client.ListModels(ctx)
	if err != nil {
		h.logger.Error("failed to list models", "error", err)
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "failed to list models: " + err.Error(),
		})
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"available_models": models,
	})
}
