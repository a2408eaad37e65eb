package http

import (
	"slices"
	"sort"

	"github.com/gin-gonic/gin"
)

// DefaultCriticalRoutes are the paths the front-end cannot work without.
// The list is maintained by hand and must follow the modules wired in cmd/api.
var DefaultCriticalRoutes = []string{
	"/api/characters",
	"/api/generate-character",
	"/api/generate-field",
	"/api/chat",
	"/api/models",
}

// Route is one path pattern with every method registered for it.
type Route struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// Registry is an immutable snapshot of the engine's route table.
// It is built once after registration and only read afterwards, so it is
// safe for concurrent use without locking.
type Registry struct {
	routes map[string][]string
	paths  []string
	total  int
}

// NewRegistry snapshots the given routes.
func NewRegistry(infos gin.RoutesInfo) *Registry {
	r := &Registry{routes: make(map[string][]string)}
	for _, info := range infos {
		if !slices.Contains(r.routes[info.Path], info.Method) {
			r.routes[info.Path] = append(r.routes[info.Path], info.Method)
			r.total++
		}
	}
	for path, methods := range r.routes {
		sort.Strings(methods)
		r.paths = append(r.paths, path)
	}
	sort.Strings(r.paths)
	return r
}

// Has reports whether any method is registered for path.
func (r *Registry) Has(path string) bool {
	_, ok := r.routes[path]
	return ok
}

// Methods returns the sorted methods registered for path.
func (r *Registry) Methods(path string) []string {
	return slices.Clone(r.routes[path])
}

// Routes returns every route sorted by path.
func (r *Registry) Routes() []Route {
	out := make([]Route, 0, len(r.paths))
	for _, path := range r.paths {
		out = append(out, Route{Path: path, Methods: slices.Clone(r.routes[path])})
	}
	return out
}

// Len returns the number of method/path pairs.
func (r *Registry) Len() int {
	return r.total
}

// RouteReport is the body of GET /api/check-routes.
type RouteReport struct {
	Success bool            `json:"success"`
	Routes  map[string]bool `json:"routes"`
}

// Check reports which critical paths are registered. Success is true only
// when every critical path is present; an empty list is trivially successful.
func (r *Registry) Check(critical []string) RouteReport {
	report := RouteReport{Success: true, Routes: make(map[string]bool, len(critical))}
	for _, path := range critical {
		present := r.Has(path)
		report.Routes[path] = present
		report.Success = report.Success && present
	}
	return report
}
