// Package chargen owns the character and field generation routes.
package chargen

import (
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/validator"
)

// Module wires the generation HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(prompts ports.PromptRenderer, generator ports.Generator, val *validator.Validator) *Module {
	return &Module{handler: NewHandler(NewService(prompts, generator), val)}
}

func (m *Module) Name() string {
	return "character-generation"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limit := ctx.GenerationLimiter.RateLimit()
	ctx.API.POST("/generate-character", limit, m.handler.GenerateCharacter)
	ctx.API.POST("/generate-field", limit, m.handler.GenerateField)
}

var _ apphttp.Module = (*Module)(nil)
