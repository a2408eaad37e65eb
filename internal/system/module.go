// Package system owns the process information and liveness routes.
package system

import (
	"time"

	apphttp "storyforge_backend/internal/http"
)

// Module wires the system management HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(env string, aiProvider bool, startedAt time.Time, static func() bool) *Module {
	return &Module{handler: NewHandler(env, aiProvider, startedAt, static)}
}

func (m *Module) Name() string {
	return "system"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/health", m.handler.Health)
	ctx.API.GET("/system/info", m.handler.Info)
}

var _ apphttp.Module = (*Module)(nil)
