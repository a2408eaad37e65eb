package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/internal/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	calls  atomic.Int32
	models []ports.ModelInfo
	err    error
	gate   chan struct{}
}

func (f *fakeLister) ListModels(ctx context.Context) ([]ports.ModelInfo, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.models, f.err
}

func TestCatalogWithoutProviderUsesConfig(t *testing.T) {
	c := NewCatalog(nil, []string{"a", "b"}, "a", nil)

	models, source := c.Models(t.Context())

	assert.Equal(t, SourceConfig, source)
	assert.Equal(t, []ports.ModelInfo{{Name: "a"}, {Name: "b"}}, models)
	assert.Equal(t, "a", c.Default())
}

func TestCatalogCachesProviderList(t *testing.T) {
	lister := &fakeLister{models: []ports.ModelInfo{{Name: "gemini-2.5-flash", DisplayName: "Flash"}}}
	c := NewCatalog(lister, []string{"fallback"}, "gemini-2.5-flash", nil)
	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }

	for range 3 {
		models, source := c.Models(t.Context())
		assert.Equal(t, SourceProvider, source)
		assert.Equal(t, "Flash", models[0].DisplayName)
	}
	assert.Equal(t, int32(1), lister.calls.Load())

	now = now.Add(defaultCacheTTL + time.Second)
	c.Models(t.Context())
	assert.Equal(t, int32(2), lister.calls.Load())
}

func TestCatalogFallsBackOnProviderError(t *testing.T) {
	lister := &fakeLister{err: errors.New("unauthenticated")}
	c := NewCatalog(lister, []string{"fallback"}, "fallback", nil)

	models, source := c.Models(t.Context())

	assert.Equal(t, SourceConfig, source)
	assert.Equal(t, []ports.ModelInfo{{Name: "fallback"}}, models)
}

func TestCatalogFallsBackOnEmptyProviderList(t *testing.T) {
	c := NewCatalog(&fakeLister{}, []string{"fallback"}, "fallback", nil)

	_, source := c.Models(t.Context())

	assert.Equal(t, SourceConfig, source)
}

func TestCatalogSharesConcurrentFetches(t *testing.T) {
	lister := &fakeLister{
		models: []ports.ModelInfo{{Name: "m"}},
		gate:   make(chan struct{}),
	}
	c := NewCatalog(lister, nil, "m", nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			models, _ := c.Models(context.Background())
			assert.Len(t, models, 1)
		}()
	}

	// Let the goroutines pile up behind the first fetch before releasing it.
	require.Eventually(t, func() bool { return lister.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(lister.gate)
	wg.Wait()

	assert.Equal(t, int32(1), lister.calls.Load())
}

func TestCatalogFetchSurvivesCallerCancellation(t *testing.T) {
	lister := &fakeLister{models: []ports.ModelInfo{{Name: "m"}}}
	c := NewCatalog(lister, []string{"fallback"}, "m", nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	models, source := c.Models(ctx)

	assert.Equal(t, SourceProvider, source)
	assert.Equal(t, []ports.ModelInfo{{Name: "m"}}, models)
}

func TestDefaultModelEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewModule(NewCatalog(nil, []string{"a", "b"}, "b", nil), true).
		RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/models/default", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"default":"b","provider_enabled":true}`, rec.Body.String())
}

func TestModelsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewModule(NewCatalog(nil, []string{"gemini-2.5-flash"}, "gemini-2.5-flash", nil), false).
		RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/models", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ModelsResponse{
		Models:          []ports.ModelInfo{{Name: "gemini-2.5-flash"}},
		Default:         "gemini-2.5-flash",
		Source:          SourceConfig,
		ProviderEnabled: false,
	}, body)
}
