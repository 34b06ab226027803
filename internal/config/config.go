// Package config loads and validates site build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanshlee/evanshlee.github.io/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxTitleLength    = 200
	MaxPathLength     = 4096
	MaxSectionLength  = 255 // Typical filesystem name limit
	MaxTOCTitleLength = 100
	MaxWorkers        = 64
)

// Defaults match the conventional site layout.
const (
	DefaultSiteTitle      = "evanshlee"
	DefaultContentDir     = "content"
	DefaultOutputDir      = "dist"
	DefaultTemplatesDir   = "templates"
	DefaultStylesDir      = "styles"
	DefaultRootIndex      = "index.md"
	DefaultBaseTemplate   = "base.html"
	DefaultNavigationFile = "partials/navigation.html"
	DefaultTOCMinDepth    = 2
	DefaultTOCMaxDepth    = 3
)

// configDirName is the directory searched under the user config dir.
const configDirName = "sitebuild"

// Config holds all configuration for a site build.
type Config struct {
	Site      SiteConfig     `yaml:"site"`
	Paths     PathsConfig    `yaml:"paths"`
	Templates TemplateConfig `yaml:"templates"`
	Sections  []string       `yaml:"sections"` // Empty = walk every directory
	Build     BuildConfig    `yaml:"build"`
	Markdown  MarkdownConfig `yaml:"markdown"`
	TOC       TOCConfig      `yaml:"toc"`
}

// SiteConfig defines site identity.
type SiteConfig struct {
	Title string `yaml:"title"` // Title of the root index page
}

// PathsConfig defines input and output locations.
type PathsConfig struct {
	Content   string `yaml:"content"`
	Output    string `yaml:"output"`
	Templates string `yaml:"templates"`
	Styles    string `yaml:"styles"`
	RootIndex string `yaml:"rootIndex"` // Empty = no root index
}

// TemplateConfig names template files relative to the templates directory.
type TemplateConfig struct {
	Base       string `yaml:"base"`       // Required at build time
	Navigation string `yaml:"navigation"` // Optional partial
	Embedded   bool   `yaml:"embedded"`   // Use the built-in starter templates instead of paths.templates
}

// BuildConfig defines execution options.
type BuildConfig struct {
	Workers int  `yaml:"workers"` // 0 = one per CPU, 1 = sequential
	Strict  bool `yaml:"strict"`  // Fail the run when any page fails
}

// MarkdownConfig defines Markdown rendering options.
type MarkdownConfig struct {
	RawHTML        bool   `yaml:"rawHTML"`
	Highlight      bool   `yaml:"highlight"`
	HighlightStyle string `yaml:"highlightStyle"` // Empty = CSS classes
	Marks          bool   `yaml:"marks"`          // ==text== to <mark>
}

// TOCConfig defines the {{toc}} template value.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// DefaultConfig returns the configuration for the conventional layout.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: DefaultSiteTitle},
		Paths: PathsConfig{
			Content:   DefaultContentDir,
			Output:    DefaultOutputDir,
			Templates: DefaultTemplatesDir,
			Styles:    DefaultStylesDir,
			RootIndex: DefaultRootIndex,
		},
		Templates: TemplateConfig{
			Base:       DefaultBaseTemplate,
			Navigation: DefaultNavigationFile,
		},
		Build:    BuildConfig{Workers: 1},
		Markdown: MarkdownConfig{RawHTML: true, Highlight: true},
		TOC: TOCConfig{
			Enabled:  false,
			MinDepth: DefaultTOCMinDepth,
			MaxDepth: DefaultTOCMaxDepth,
		},
	}
}

// Validate checks field lengths and value ranges.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}

	paths := []struct {
		name, value string
	}{
		{"paths.content", c.Paths.Content},
		{"paths.output", c.Paths.Output},
		{"paths.templates", c.Paths.Templates},
		{"paths.styles", c.Paths.Styles},
		{"paths.rootIndex", c.Paths.RootIndex},
		{"templates.base", c.Templates.Base},
		{"templates.navigation", c.Templates.Navigation},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("%w: paths.output: required", ErrInvalidValue)
	}
	if c.Templates.Base == "" {
		return fmt.Errorf("%w: templates.base: required", ErrInvalidValue)
	}

	for i, s := range c.Sections {
		name := fmt.Sprintf("sections[%d]", i)
		if err := validateFieldLength(name, s, MaxSectionLength); err != nil {
			return err
		}
		if s == "" || strings.ContainsAny(s, "/\\") || s == "." || s == ".." {
			return fmt.Errorf("%w: %s: %q is not a directory name", ErrInvalidValue, name, s)
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if c.TOC.Enabled {
		if c.TOC.MinDepth < 1 || c.TOC.MinDepth > 6 {
			return fmt.Errorf("%w: toc.minDepth: must be between 1 and 6, got %d", ErrInvalidValue, c.TOC.MinDepth)
		}
		if c.TOC.MaxDepth < 1 || c.TOC.MaxDepth > 6 {
			return fmt.Errorf("%w: toc.maxDepth: must be between 1 and 6, got %d", ErrInvalidValue, c.TOC.MaxDepth)
		}
		if c.TOC.MinDepth > c.TOC.MaxDepth {
			return fmt.Errorf("%w: toc.minDepth (%d) exceeds toc.maxDepth (%d)", ErrInvalidValue, c.TOC.MinDepth, c.TOC.MaxDepth)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise it's searched as a name in standard locations.
// Values absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML, for writing starter config files.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := filepath.Ext(s)
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/sitebuild/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
