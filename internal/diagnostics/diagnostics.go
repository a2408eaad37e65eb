// Package diagnostics collects the startup report about the static bundle and
// the route table. The report is informational; nothing in it fails startup.
package diagnostics

import (
	"os"
	"path/filepath"
	"strings"

	apphttp "storyforge_backend/internal/http"
	"storyforge_backend/platform/logger"
)

const indent = "    "

// StaticReport describes the static folder as seen at boot.
type StaticReport struct {
	Folder      string
	Exists      bool
	IndexExists bool
	// Tree lists directories (with a trailing slash) and files, indented by depth.
	Tree []string
}

// InspectStatic stats the folder and its entry document and lists its tree.
// Unreadable subdirectories are skipped.
func InspectStatic(folder, index string) StaticReport {
	report := StaticReport{Folder: folder}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return report
	}
	report.Exists = true

	if info, err := os.Stat(filepath.Join(folder, index)); err == nil && !info.IsDir() {
		report.IndexExists = true
	}

	report.Tree = listTree(folder, 0, nil)
	return report
}

// listTree emits a directory, then its files, then its subdirectories.
func listTree(dir string, depth int, lines []string) []string {
	lines = append(lines, strings.Repeat(indent, depth)+filepath.Base(dir)+"/")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return lines
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
			continue
		}
		lines = append(lines, strings.Repeat(indent, depth+1)+entry.Name())
	}
	for _, sub := range subdirs {
		lines = listTree(sub, depth+1, lines)
	}
	return lines
}

// Log writes the static report and the route table once. Summary lines go out
// at info; the tree and individual routes only at debug.
func Log(log *logger.Logger, static StaticReport, routes *apphttp.Registry) {
	log.Info("static folder",
		"path", static.Folder,
		"exists", static.Exists,
		"index_exists", static.IndexExists,
	)
	if len(static.Tree) > 0 {
		log.Debug("static folder contents", "tree", "\n"+strings.Join(static.Tree, "\n"))
	}

	if routes == nil {
		return
	}
	log.Info("verifying API routes", "count", routes.Len())
	for _, route := range routes.Routes() {
		log.Debug("route", "path", route.Path, "methods", route.Methods)
	}
}
