// Package http provides HTTP server infrastructure including the Module interface
// that all route modules must implement for route registration.
package http

import (
	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module represents a functional area that can register its HTTP routes.
// Each route module implements this interface to encapsulate its own
// route setup, keeping the composer decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router groups.
	// Registering a path twice is a programming error and panics.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// API is the /api route group.
	API *gin.RouterGroup
	// Validator is the shared request validator.
	Validator *validator.Validator
	// Logger is scoped to the module being registered.
	Logger *logger.Logger
	// GenerationLimiter throttles endpoints that call the AI provider.
	GenerationLimiter *httpkit.IPRateLimiter
}
