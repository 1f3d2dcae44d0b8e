package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Service identity reported by the root endpoint.
const (
	serviceName    = "E-commerce Chat AI"
	serviceVersion = "1.0.0"
)

// HealthHandler serves the service metadata and liveness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root reports the service identity.
//
//	@Summary		Service info
//	@Description	Name, version and documentation location
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func (h *HealthHandler) Root(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"name":    serviceName,
		"version": serviceVersion,
		"docs":    "/docs",
	})
}

// Health is the liveness probe.
//
//	@Summary		Health check
//	@Description	Reports whether the service is running
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *HealthHandler) Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
