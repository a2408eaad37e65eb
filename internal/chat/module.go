// Package chat owns the chat route.
package chat

import (
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/validator"
)

// Module wires the chat HTTP route.
type Module struct {
	handler *Handler
}

func NewModule(characters ports.CharacterReader, prompts ports.PromptRenderer, generator ports.Generator, defaultModel string, val *validator.Validator) *Module {
	svc := NewService(characters, prompts, generator, defaultModel)
	return &Module{handler: NewHandler(svc, val)}
}

func (m *Module) Name() string {
	return "chat"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/chat", ctx.GenerationLimiter.RateLimit(), m.handler.Send)
}

var _ apphttp.Module = (*Module)(nil)
