// Package chatinstances owns the chat instance routes.
package chatinstances

import (
	"storyforge_backend/internal/events"
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/validator"
)

// Module wires the chat instance HTTP routes.
type Module struct {
	handler *Handler
}

// NewModule creates the module. With a non-nil bus, instances of deleted
// characters are removed.
func NewModule(characters ports.CharacterReader, bus events.Bus, val *validator.Validator) *Module {
	store := NewStore(characters)
	if bus != nil {
		store.Subscribe(bus)
	}
	return &Module{handler: NewHandler(store, val)}
}

func (m *Module) Name() string {
	return "chat-instances"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/chat-instances")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.Get)
	group.DELETE("/:id", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
