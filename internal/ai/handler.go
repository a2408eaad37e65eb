package ai

import (
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Model list sources reported to the client.
const (
	SourceConfig   = "config"
	SourceProvider = "provider"
)

// ModelsResponse is the body of GET /api/models.
type ModelsResponse struct {
	Models          []ports.ModelInfo `json:"models"`
	Default         string            `json:"default"`
	Source          string            `json:"source"`
	ProviderEnabled bool              `json:"provider_enabled"`
}

// DefaultModelResponse is the body of GET /api/models/default.
type DefaultModelResponse struct {
	Default         string `json:"default"`
	ProviderEnabled bool   `json:"provider_enabled"`
}

// Handler exposes the model catalog.
type Handler struct {
	catalog         *Catalog
	providerEnabled bool
}

func NewHandler(catalog *Catalog, providerEnabled bool) *Handler {
	return &Handler{catalog: catalog, providerEnabled: providerEnabled}
}

// ListModels handles GET /api/models
func (h *Handler) ListModels(c *gin.Context) {
	models, source := h.catalog.Models(c.Request.Context())
	httpkit.OK(c, ModelsResponse{
		Models:          models,
		Default:         h.catalog.Default(),
		Source:          source,
		ProviderEnabled: h.providerEnabled,
	})
}

// DefaultModel handles GET /api/models/default
func (h *Handler) DefaultModel(c *gin.Context) {
	httpkit.OK(c, DefaultModelResponse{
		Default:         h.catalog.Default(),
		ProviderEnabled: h.providerEnabled,
	})
}
