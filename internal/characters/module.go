// Package characters owns the character management routes.
package characters

import (
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/platform/validator"
)

// Module wires the character management HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(store *Store, val *validator.Validator) *Module {
	return &Module{handler: NewHandler(store, val)}
}

func (m *Module) Name() string {
	return "characters"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/characters")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.Get)
	group.PUT("/:id", m.handler.Update)
	group.DELETE("/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
