package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/handler"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	healthHandler *handler.HealthHandler,
	productHandler *handler.ProductHandler,
	chatHandler *handler.ChatHandler,
	modelHandler *handler.ModelHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// API documentation
	// Access at: http://localhost:8000/docs/index.html
	h.GET("/docs/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Service metadata and health check
	h.GET("/", healthHandler.Root)
	h.GET("/health", healthHandler.Health)

	// Catalog
	products := h.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	// Conversation
	chat := h.Group("/chat")
	{
		chat.POST("", chatHandler.Chat)
		chat.GET("/history/:session_id", chatHandler.History)
		chat.DELETE("/history/:session_id", chatHandler.ClearHistory)
	}

	// Model discovery
	h.GET("/ai/models", modelHandler.List)
}
