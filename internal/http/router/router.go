// Package router assembles the gin engine from the route modules and owns the
// composer-level endpoints: the static entry document and the route check.
package router

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/metrics"

	"github.com/gin-gonic/gin"
)

const (
	checkRoutesPath = "/api/check-routes"
	metricsPath     = "/metrics"
)

// ErrAlreadyServing is returned when Serve is called on a server that is
// already listening.
var ErrAlreadyServing = errors.New("server is already serving")

// Server is the composed application. Its route table is frozen when New
// returns; Serve moves it from initialized to serving, one way.
type Server struct {
	engine   *gin.Engine
	registry *apphttp.Registry
	critical []string
	log      *logger.Logger
	serving  atomic.Bool
}

// New ensures the configured directories exist, builds the engine, registers
// every module exactly once and snapshots the route table.
// Directory failures are returned and must abort startup. A panicking module
// is not recovered.
func New(app *apphttp.App) (*Server, error) {
	if app.Logger == nil {
		app.Logger = logger.Discard()
	}

	engine, m, err := initialize(app)
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:   engine,
		critical: app.Critical(),
		log:      app.Logger,
	}

	registerModules(engine, app)

	engine.GET(checkRoutesPath, s.checkRoutes)
	engine.GET(metricsPath, gin.WrapH(m.Handler()))

	s.registry = apphttp.NewRegistry(engine.Routes())
	m.SetRegisteredRoutes(s.registry.Len())
	app.Logger.Info("routes registered", "modules", len(app.Modules), "routes", s.registry.Len())

	return s, nil
}

func initialize(app *apphttp.App) (*gin.Engine, *metrics.Metrics, error) {
	if err := app.Config.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("ensure directories: %w", err)
	}

	m := metrics.New()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(m.Middleware())
	engine.Use(corsPolicy(app.Config))

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, "not found", nil)
	})

	mountStatic(engine, app.Config)

	return engine, m, nil
}

func registerModules(engine *gin.Engine, app *apphttp.App) {
	limiter := httpkit.NewPerMinuteLimiter(app.Config.GetGenerationRatePerMinute(), app.Logger)
	api := engine.Group("/api")

	seen := make(map[string]struct{}, len(app.Modules))
	for _, module := range app.Modules {
		name := module.Name()
		if _, dup := seen[name]; dup {
			panic(fmt.Sprintf("module %q registered twice", name))
		}
		seen[name] = struct{}{}

		module.RegisterRoutes(&apphttp.RouterContext{
			Engine:            engine,
			API:               api,
			Validator:         app.Validator,
			Logger:            app.Logger.WithModule(name),
			GenerationLimiter: limiter,
		})
		app.Logger.Debug("module registered", "module", name)
	}
}

func (s *Server) checkRoutes(c *gin.Context) {
	httpkit.OK(c, s.registry.Check(s.critical))
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Routes returns the frozen route table.
func (s *Server) Routes() *apphttp.Registry {
	return s.registry
}

// CheckRoutes is the in-process form of GET /api/check-routes.
func (s *Server) CheckRoutes() apphttp.RouteReport {
	return s.registry.Check(s.critical)
}

// Serve starts the listener and blocks for the life of the process.
func (s *Server) Serve(addr string) error {
	if !s.serving.CompareAndSwap(false, true) {
		return ErrAlreadyServing
	}
	s.log.Info("server listening", "addr", addr)
	return s.engine.Run(addr)
}
