package system

import (
	"runtime"
	"time"

	"storyforge_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time with -ldflags "-X storyforge_backend/internal/system.Version=...".
var Version = "dev"

// Info is the body of GET /api/system/info.
type Info struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	GoVersion       string    `json:"go_version"`
	Env             string    `json:"env"`
	StartedAt       time.Time `json:"started_at"`
	UptimeSeconds   int64     `json:"uptime_seconds"`
	Goroutines      int       `json:"goroutines"`
	AIProvider      bool      `json:"ai_provider_enabled"`
	StaticAvailable bool      `json:"static_available"`
}

// Handler exposes process information.
type Handler struct {
	env        string
	aiProvider bool
	startedAt  time.Time
	static     func() bool
	now        func() time.Time
}

// NewHandler creates the handler. static reports whether the front-end entry
// document is currently present.
func NewHandler(env string, aiProvider bool, startedAt time.Time, static func() bool) *Handler {
	return &Handler{
		env:        env,
		aiProvider: aiProvider,
		startedAt:  startedAt,
		static:     static,
		now:        time.Now,
	}
}

// Info handles GET /api/system/info
func (h *Handler) Info(c *gin.Context) {
	httpkit.OK(c, Info{
		Name:            "storyforge",
		Version:         Version,
		GoVersion:       runtime.Version(),
		Env:             h.env,
		StartedAt:       h.startedAt.UTC(),
		UptimeSeconds:   int64(h.now().Sub(h.startedAt).Seconds()),
		Goroutines:      runtime.NumGoroutine(),
		AIProvider:      h.aiProvider,
		StaticAvailable: h.static != nil && h.static(),
	})
}

// Health handles GET /api/health
func (h *Handler) Health(c *gin.Context) {
	httpkit.OK(c, gin.H{"status": "ok"})
}
