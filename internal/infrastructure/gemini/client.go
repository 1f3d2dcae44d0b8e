package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/config"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

// Fixed reply strings. These are part of the assistant's external
// behavior and must not be reworded.
const (
	emptyCatalogPlaceholder = "(no hay productos disponibles)"
	emptyHistoryPlaceholder = "(sin historial)"
	fallbackReply           = "Puedo ayudarte a elegir tenis: ¿prefieres running o casual, y cuál es tu presupuesto aproximado?"
)

const promptTemplate = `Eres un asistente de compras para una tienda de zapatos.
Responde en español, de manera profesional, breve y amable. Usa el contexto si existe.

PRODUCTOS DISPONIBLES:
%s

HISTORIAL DE CHAT:
%s

Usuario: %s
Asistente:`

// Client talks to the Gemini generation API.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates a Gemini client from configuration. It fails when
// no API key is configured (GOOGLE_API_KEY or GEMINI_API_KEY).
func NewClient(ctx context.Context, cfg config.GeminiConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing Gemini API key (set GOOGLE_API_KEY or GEMINI_API_KEY)")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logger.Info("gemini client created", "model", cfg.Model)

	return &Client{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// GenerateReply produces the assistant's answer for one chat turn. It
// never returns an error: transport, quota and model failures become a
// user-safe apology embedding the error's type name, and responses
// without usable text fall back to a fixed clarifying question.
func (c *Client) GenerateReply(ctx context.Context, userMessage string, products []*entity.Product, chatCtx *entity.ChatContext) string {
	prompt := buildPrompt(userMessage, products, chatCtx)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Error("gemini generation failed", "model", c.model, "error", err)
		return fmt.Sprintf("Lo siento, ahora mismo no pude generar respuesta (%T). Intenta de nuevo.", err)
	}

	return extractText(resp)
}

// buildPrompt composes the fixed instruction template from the full
// catalog, the trailing history window and the new user message.
func buildPrompt(userMessage string, products []*entity.Product, chatCtx *entity.ChatContext) string {
	productsTxt := formatProducts(products)

	historyTxt := ""
	if chatCtx != nil {
		historyTxt = chatCtx.FormatForPrompt()
	}
	if historyTxt == "" {
		historyTxt = emptyHistoryPlaceholder
	}

	return fmt.Sprintf(promptTemplate, productsTxt, historyTxt, userMessage)
}

// formatProducts renders the catalog as a dash-bulleted block, one
// line per product.
func formatProducts(products []*entity.Product) string {
	if len(products) == 0 {
		return emptyCatalogPlaceholder
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf(
			"- %s | Marca:%s | Cat:%s | Talla:%s | Color:%s | $%v | Stock:%d — %s",
			p.Name, p.Brand, p.Category, p.Size, p.Color, p.Price, p.Stock, p.Description,
		))
	}
	return strings.Join(lines, "\n")
}

// extractText pulls plain text out of the API's variant response
// shapes: the aggregate text accessor first, then a manual scan of
// candidates/content/parts, then the fixed fallback.
func extractText(resp *genai.GenerateContentResponse) string {
	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				return text
			}
		}
	}

	return fallbackReply
}

// ModelInfo describes one model available to the configured credential.
type ModelInfo struct {
	Name                       string   `json:"name"`
	SupportedGenerationMethods []string `json:"supported_generation_methods"`
}

// ListModels lists the models the configured API key can use.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var infos []ModelInfo
	for model, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		infos = append(infos, ModelInfo{
			Name:                       model.Name,
			SupportedGenerationMethods: model.SupportedActions,
		})
	}
	return infos, nil
}
