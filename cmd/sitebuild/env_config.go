package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evanshlee/evanshlee.github.io/internal/config"
)

// ErrInvalidEnvValue indicates a SITEBUILD_* variable could not be parsed.
var ErrInvalidEnvValue = errors.New("invalid environment variable")

// envPrefix marks the environment variables read by sitebuild.
const envPrefix = "SITEBUILD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string   // SITEBUILD_CONFIG: config file name or path
	SiteTitle  string   // SITEBUILD_SITE_TITLE: root index title
	ContentDir string   // SITEBUILD_CONTENT_DIR: content directory
	OutputDir  string   // SITEBUILD_OUTPUT_DIR: output directory
	Templates  string   // SITEBUILD_TEMPLATES_DIR: templates directory
	Styles     string   // SITEBUILD_STYLES_DIR: styles directory
	Sections   []string // SITEBUILD_SECTIONS: comma-separated allow-list
	Workers    int      // SITEBUILD_WORKERS: parallel workers
	HasWorkers bool
	Strict     bool // SITEBUILD_STRICT: fail on page errors
	HasStrict  bool
}

// knownEnvVars lists valid SITEBUILD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEBUILD_CONFIG":        true,
	"SITEBUILD_SITE_TITLE":    true,
	"SITEBUILD_CONTENT_DIR":   true,
	"SITEBUILD_OUTPUT_DIR":    true,
	"SITEBUILD_TEMPLATES_DIR": true,
	"SITEBUILD_STYLES_DIR":    true,
	"SITEBUILD_SECTIONS":      true,
	"SITEBUILD_WORKERS":       true,
	"SITEBUILD_STRICT":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric or boolean values are errors rather than silently ignored.
func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SITEBUILD_CONFIG"),
		SiteTitle:  os.Getenv("SITEBUILD_SITE_TITLE"),
		ContentDir: os.Getenv("SITEBUILD_CONTENT_DIR"),
		OutputDir:  os.Getenv("SITEBUILD_OUTPUT_DIR"),
		Templates:  os.Getenv("SITEBUILD_TEMPLATES_DIR"),
		Styles:     os.Getenv("SITEBUILD_STYLES_DIR"),
	}

	if sections := os.Getenv("SITEBUILD_SECTIONS"); sections != "" {
		for _, s := range strings.Split(sections, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Sections = append(cfg.Sections, s)
			}
		}
	}

	if workers := os.Getenv("SITEBUILD_WORKERS"); workers != "" {
		w, err := strconv.Atoi(workers)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("%w: SITEBUILD_WORKERS=%q: want a non-negative integer", ErrInvalidEnvValue, workers)
		}
		cfg.Workers = w
		cfg.HasWorkers = true
	}

	if strict := os.Getenv("SITEBUILD_STRICT"); strict != "" {
		b, err := strconv.ParseBool(strict)
		if err != nil {
			return nil, fmt.Errorf("%w: SITEBUILD_STRICT=%q: want true or false", ErrInvalidEnvValue, strict)
		}
		cfg.Strict = b
		cfg.HasStrict = true
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized SITEBUILD_* variables.
// Helps catch typos like SITEBUILD_OUTPUT instead of SITEBUILD_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags. This ensures: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SiteTitle != "" {
		cfg.Site.Title = env.SiteTitle
	}
	if env.ContentDir != "" {
		cfg.Paths.Content = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Paths.Output = env.OutputDir
	}
	if env.Templates != "" {
		cfg.Paths.Templates = env.Templates
	}
	if env.Styles != "" {
		cfg.Paths.Styles = env.Styles
	}
	if len(env.Sections) > 0 {
		cfg.Sections = env.Sections
	}
	if env.HasWorkers {
		cfg.Build.Workers = env.Workers
	}
	if env.HasStrict {
		cfg.Build.Strict = env.Strict
	}
}
