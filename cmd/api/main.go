package main

import (
	"context"
	"time"

	"storyforge_backend/internal/characters"
	"storyforge_backend/internal/diagnostics"
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/http/router"
	"storyforge_backend/internal/ports"
	"storyforge_backend/internal/prompts"
	"storyforge_backend/platform/ai/gemini"
	"storyforge_backend/platform/config"
	"storyforge_backend/platform/events"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env, cfg.Debug)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.Addr(), "debug", cfg.Debug)

	configureGin(cfg, log)

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	val := validator.New()

	var (
		generator ports.Generator
		lister    ports.ModelLister
	)
	if cfg.IsAIProviderEnabled() {
		client, err := gemini.New(context.Background(), cfg.GetGeminiAPIKey(), cfg.GetAIDefaultModel())
		if err != nil {
			log.Error("failed to initialize AI provider", "error", err)
			panic("failed to initialize AI provider: " + err.Error())
		}
		generator, lister = client, client
		log.Info("AI provider initialized", "provider", "gemini", "default_model", cfg.GetAIDefaultModel())
	} else {
		log.Warn("GEMINI_API_KEY not configured; generation endpoints will answer 503")
	}

	promptStore, err := prompts.NewStore()
	if err != nil {
		log.Error("failed to load prompt templates", "error", err)
		panic("failed to load prompt templates: " + err.Error())
	}

	// ========================================================================
	// Route Modules (Composition Root)
	// ========================================================================

	bus := events.NewInMemoryBus(log)
	characterStore := characters.NewStore().WithEvents(bus)

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Validator: val,
		Modules: newModules(cfg, services{
			validator:  val,
			generator:  generator,
			lister:     lister,
			prompts:    promptStore,
			characters: characterStore,
			bus:        bus,
			log:        log,
			startedAt:  startedAt,
		}),
	}

	// Inspect before router.New creates the static folder.
	static := diagnostics.InspectStatic(cfg.GetStaticFolder(), router.IndexDocument)

	srv, err := router.New(app)
	if err != nil {
		log.Error("failed to initialize server", "error", err)
		panic("failed to initialize server: " + err.Error())
	}

	diagnostics.Log(log, static, srv.Routes())

	report := srv.CheckRoutes()
	if !report.Success {
		log.Warn("critical routes missing", "routes", report.Routes)
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	if err := srv.Serve(cfg.Addr()); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
}

// configureGin selects gin's mode from the debug flag and routes gin's own
// route table printing through the structured logger.
func configureGin(cfg config.HTTPConfig, log *logger.Logger) {
	if cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, _ int) {
		log.RouteRegistered(httpMethod, absolutePath, handlerName)
	}
}
