// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when known, the user config location.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create " + filepath.Join(userConfigDir, "sitebuild", "sitebuild.yaml")
	}
	return format(hint)
}

// ForMissingBaseTemplate returns hints when the base page template is absent.
// Suggests scaffolding when the templates directory itself is missing.
func ForMissingBaseTemplate(templatesDir string) string {
	if !fileutil.DirExists(templatesDir) {
		return format("run 'sitebuild init' to create starter templates, set --templates, or use --embedded-templates")
	}
	return format("create base.html in " + templatesDir + " or set templates.base in config")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStylesDir returns hints for styles directory copy errors.
func ForStylesDir(stylesDir string) string {
	if !fileutil.DirExists(stylesDir) {
		return format("create " + stylesDir + " or set --styles to an existing directory")
	}
	return format("check files in " + stylesDir + " are readable")
}

// ForFailedFiles returns a hint after a build in which some pages failed.
func ForFailedFiles(failed int, strict bool) string {
	if failed == 0 {
		return ""
	}
	var hints []string
	hints = append(hints, "rerun with --verbose for per-file details")
	if !strict {
		hints = append(hints, "use --strict to fail the build on page errors")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
