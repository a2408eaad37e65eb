package router

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"storyforge_backend/platform/apperr"
	"storyforge_backend/platform/config"
	"storyforge_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IndexDocument is the front-end entry point served at "/".
const IndexDocument = "index.html"

// mountStatic registers "/" and the asset route. Missing files are reported
// per request; nothing here touches the filesystem at startup.
func mountStatic(engine *gin.Engine, cfg config.StaticConfig) {
	folder := cfg.GetStaticFolder()
	index := serveIndex(filepath.Join(folder, IndexDocument))
	engine.GET("/", index)
	engine.HEAD("/", index)
	engine.Static(cfg.GetStaticURLPath(), folder)
}

func serveIndex(index string) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := os.Stat(index)
		if err != nil || info.IsDir() {
			httpkit.HandleError(c, apperr.NotFound(IndexDocument+" not found"))
			return
		}
		c.File(index)
	}
}

// corsPolicy allows every origin, method and request header by default so a
// separately hosted front-end can call the API. An explicit origin list
// narrows the origins only.
func corsPolicy(cfg config.HTTPConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{httpkit.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.GetCORSAllowAll() {
		policy.AllowAllOrigins = true
	} else {
		policy.AllowOrigins = cfg.GetCORSOrigins()
	}

	return cors.New(policy)
}
