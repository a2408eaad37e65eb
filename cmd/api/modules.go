package main

import (
	"os"
	"path/filepath"
	"time"

	"storyforge_backend/internal/ai"
	"storyforge_backend/internal/characters"
	"storyforge_backend/internal/chargen"
	"storyforge_backend/internal/chat"
	"storyforge_backend/internal/chatinstances"
	"storyforge_backend/internal/events"
	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/http/router"
	"storyforge_backend/internal/ports"
	"storyforge_backend/internal/prompts"
	"storyforge_backend/internal/system"
	"storyforge_backend/platform/config"
	"storyforge_backend/platform/logger"
	"storyforge_backend/platform/validator"
)

// services are the shared collaborators handed to the route modules.
// generator and lister stay nil when no AI provider is configured.
type services struct {
	validator  *validator.Validator
	generator  ports.Generator
	lister     ports.ModelLister
	prompts    *prompts.Store
	characters *characters.Store
	bus        events.Bus
	log        *logger.Logger
	startedAt  time.Time
}

// newModules builds the route modules in registration order.
func newModules(cfg *config.Config, svc services) []apphttp.Module {
	indexPath := filepath.Join(cfg.GetStaticFolder(), router.IndexDocument)

	return []apphttp.Module{
		characters.NewModule(svc.characters, svc.validator),
		chat.NewModule(svc.characters, svc.prompts, svc.generator, cfg.GetAIDefaultModel(), svc.validator),
		chargen.NewModule(svc.prompts, svc.generator, svc.validator),
		ai.NewModule(ai.NewCatalog(svc.lister, cfg.GetAIModels(), cfg.GetAIDefaultModel(), svc.log), cfg.IsAIProviderEnabled()),
		system.NewModule(cfg.Env, cfg.IsAIProviderEnabled(), svc.startedAt, func() bool { return fileExists(indexPath) }),
		prompts.NewModule(svc.prompts, svc.validator),
		chatinstances.NewModule(svc.characters, svc.bus, svc.validator),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
