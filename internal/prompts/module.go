// Package prompts owns the prompt template routes and renders templates for
// the modules that talk to the AI provider.
package prompts

import (
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/platform/validator"
)

// Module wires the prompt management HTTP routes.
type Module struct {
	store   *Store
	handler *Handler
}

func NewModule(store *Store, val *validator.Validator) *Module {
	return &Module{store: store, handler: NewHandler(store, val)}
}

func (m *Module) Name() string {
	return "prompts"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/prompts")
	group.GET("", m.handler.List)
	group.GET("/:name", m.handler.Get)
	group.PUT("/:name", m.handler.Update)
	group.DELETE("/:name", m.handler.Reset)
}

var _ apphttp.Module = (*Module)(nil)
