package ai

import (
	"context"
	"slices"
	"sync"
	"time"

	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/logger"

	"golang.org/x/sync/singleflight"
)

const defaultCacheTTL = 10 * time.Minute

// Catalog answers which models the front-end may offer. With a lister it
// caches the provider's list; without one, or when the provider fails, it
// falls back to the configured names.
type Catalog struct {
	lister       ports.ModelLister
	configured   []ports.ModelInfo
	defaultModel string
	ttl          time.Duration
	log          *logger.Logger
	now          func() time.Time

	group     singleflight.Group
	mu        sync.RWMutex
	cached    []ports.ModelInfo
	fetchedAt time.Time
}

// NewCatalog creates a catalog. lister may be nil.
func NewCatalog(lister ports.ModelLister, configured []string, defaultModel string, log *logger.Logger) *Catalog {
	models := make([]ports.ModelInfo, 0, len(configured))
	for _, name := range configured {
		models = append(models, ports.ModelInfo{Name: name})
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Catalog{
		lister:       lister,
		configured:   models,
		defaultModel: defaultModel,
		ttl:          defaultCacheTTL,
		log:          log,
		now:          time.Now,
	}
}

// Default returns the model used when a request names none.
func (c *Catalog) Default() string {
	return c.defaultModel
}

// Models returns the current model list and where it came from.
// Concurrent cache misses share a single provider call.
func (c *Catalog) Models(ctx context.Context) ([]ports.ModelInfo, string) {
	if c.lister == nil {
		return slices.Clone(c.configured), SourceConfig
	}

	if models, ok := c.fresh(); ok {
		return models, SourceProvider
	}

	// The shared fetch must not end with whichever caller started it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do("models", func() (interface{}, error) {
		// Another caller may have refreshed the cache since the check above.
		if models, ok := c.fresh(); ok {
			return models, nil
		}
		models, err := c.lister.ListModels(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cached = models
		c.fetchedAt = c.now()
		c.mu.Unlock()
		return models, nil
	})
	if err != nil {
		c.log.WithContext(ctx).Warn("model listing failed; using configured models", "error", err)
		return slices.Clone(c.configured), SourceConfig
	}
	models := v.([]ports.ModelInfo)
	if len(models) == 0 {
		return slices.Clone(c.configured), SourceConfig
	}
	return slices.Clone(models), SourceProvider
}

func (c *Catalog) fresh() ([]ports.ModelInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return slices.Clone(c.cached), true
	}
	return nil, false
}
