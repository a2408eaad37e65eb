// Package ai owns the AI integration routes: which models exist and whether a
// provider is configured.
package ai

import (
	apphttp "storyforge_backend/internal/http"
)

// Module wires the AI integration HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule creates the module. providerEnabled reports whether generation
// endpoints have a provider behind them.
func NewModule(catalog *Catalog, providerEnabled bool) *Module {
	return &Module{handler: NewHandler(catalog, providerEnabled)}
}

func (m *Module) Name() string {
	return "ai"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/models", m.handler.ListModels)
	ctx.API.GET("/models/default", m.handler.DefaultModel)
}

var _ apphttp.Module = (*Module)(nil)
