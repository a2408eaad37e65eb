package http

import (
	"storyforge_backend/platform/config"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/validator"
)

// ComposerConfig combines the config interfaces needed by the composer.
type ComposerConfig interface {
	config.HTTPConfig
	config.StaticConfig
	config.RateLimitConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config ComposerConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Validator is shared with every module.
	Validator *validator.Validator
	// Modules contains all route modules, registered in slice order.
	Modules []Module
	// CriticalRoutes overrides DefaultCriticalRoutes when non-nil.
	CriticalRoutes []string
}

// Critical returns the paths the route check treats as mandatory.
func (a *App) Critical() []string {
	if a.CriticalRoutes != nil {
		return a.CriticalRoutes
	}
	return DefaultCriticalRoutes
}
