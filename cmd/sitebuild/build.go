package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	site "github.com/evanshlee/evanshlee.github.io"
	"github.com/evanshlee/evanshlee.github.io/internal/assets"
	"github.com/evanshlee/evanshlee.github.io/internal/config"
	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
	"github.com/evanshlee/evanshlee.github.io/internal/hints"
)

// defaultConfigFile is loaded when neither --config nor SITEBUILD_CONFIG is set.
const defaultConfigFile = "sitebuild.yaml"

// ErrPagesFailed indicates a --strict build in which some pages failed.
var ErrPagesFailed = errors.New("pages failed")

// runBuild resolves configuration, runs the site build and prints a summary.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	start := env.Now()

	result, err := site.NewBuilder(builderOptions(cfg, logger)...).Build(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w%s", err, hintFor(err, cfg))
	}
	if ctx.Err() != nil {
		return fmt.Errorf("build interrupted: %w", ctx.Err())
	}

	printSummary(env, result, flags.common, env.Now().Sub(start))

	if result.Failed > 0 {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForFailedFiles(result.Failed, cfg.Build.Strict), "\n"))
		if cfg.Build.Strict {
			return fmt.Errorf("%w: %d of %d", ErrPagesFailed, result.Failed, len(result.Files))
		}
	}
	return nil
}

// resolveConfig layers defaults, the config file, SITEBUILD_* variables and
// flags, in increasing priority, then validates the result.
func resolveConfig(flags *buildFlags) (*config.Config, error) {
	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName == "" && fileutil.FileExists(defaultConfigFile) {
		configName = defaultConfigFile
	}
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			var hint string
			if errors.Is(err, config.ErrConfigNotFound) {
				userDir, _ := os.UserConfigDir()
				hint = hints.ForConfigNotFound(userDir)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg (CLI wins).
func mergeFlags(f *buildFlags, cfg *config.Config) {
	changed := f.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("site-title") {
		cfg.Site.Title = f.siteTitle
	}
	if changed("content") {
		cfg.Paths.Content = f.paths.content
	}
	if changed("output") {
		cfg.Paths.Output = f.paths.output
	}
	if changed("templates") {
		cfg.Paths.Templates = f.paths.templates
	}
	if changed("styles") {
		cfg.Paths.Styles = f.paths.styles
	}
	if changed("root-index") {
		cfg.Paths.RootIndex = f.paths.rootIndex
	}
	if changed("embedded-templates") {
		cfg.Templates.Embedded = f.paths.embeddedTemplates
	}
	if changed("sections") {
		cfg.Sections = f.sections
	}
	if changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if changed("strict") {
		cfg.Build.Strict = f.strict
	}

	// Markdown
	if changed("no-raw-html") {
		cfg.Markdown.RawHTML = !f.markdown.noRawHTML
	}
	if changed("no-highlight") {
		cfg.Markdown.Highlight = !f.markdown.noHighlight
	}
	if changed("highlight-style") {
		cfg.Markdown.HighlightStyle = f.markdown.highlightStyle
	}
	if changed("marks") {
		cfg.Markdown.Marks = f.markdown.marks
	}

	// TOC: setting any TOC value enables it unless --no-toc
	if changed("toc-title") {
		cfg.TOC.Title = f.toc.title
		cfg.TOC.Enabled = true
	}
	if changed("toc-min-depth") {
		cfg.TOC.MinDepth = f.toc.minDepth
		cfg.TOC.Enabled = true
	}
	if changed("toc-max-depth") {
		cfg.TOC.MaxDepth = f.toc.maxDepth
		cfg.TOC.Enabled = true
	}
	if f.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if f.toc.disabled {
		cfg.TOC.Enabled = false
	}
}

// builderOptions translates cfg into site builder options.
func builderOptions(cfg *config.Config, logger *slog.Logger) []site.Option {
	opts := []site.Option{
		site.WithSiteTitle(cfg.Site.Title),
		site.WithContentDir(cfg.Paths.Content),
		site.WithOutputDir(cfg.Paths.Output),
		site.WithTemplatesDir(cfg.Paths.Templates),
		site.WithStylesDir(cfg.Paths.Styles),
		site.WithRootIndex(cfg.Paths.RootIndex),
		site.WithTemplateNames(cfg.Templates.Base, cfg.Templates.Navigation),
		site.WithSections(cfg.Sections...),
		site.WithWorkers(resolveWorkers(cfg.Build.Workers)),
		site.WithMarkdown(site.MarkdownOptions{
			RawHTML:        cfg.Markdown.RawHTML,
			Highlight:      cfg.Markdown.Highlight,
			HighlightStyle: cfg.Markdown.HighlightStyle,
			Marks:          cfg.Markdown.Marks,
		}),
		site.WithLogger(logger),
	}

	if cfg.Templates.Embedded {
		opts = append(opts, site.WithTemplateLoader(assets.NewEmbeddedLoader()))
	}

	if cfg.TOC.Enabled {
		opts = append(opts, site.WithTOC(&site.TOC{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}))
	}
	return opts
}

// resolveWorkers maps 0 to one worker per available CPU.
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// newLogger builds the stderr logger: errors only with quiet, debug with
// verbose, info otherwise.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// hintFor returns an actionable hint for a setup failure.
func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, site.ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, site.ErrStylesCopy):
		return hints.ForStylesDir(cfg.Paths.Styles)
	case errors.Is(err, site.ErrBaseTemplateNotFound):
		return hints.ForMissingBaseTemplate(cfg.Paths.Templates)
	}
	return ""
}

// printSummary reports the processed count on stdout.
func printSummary(env *Environment, result *site.BuildResult, common commonFlags, elapsed time.Duration) {
	if common.quiet {
		return
	}

	if result.Failed > 0 {
		fmt.Fprintf(env.Stdout, "Processed %d files (%d failed)\n", result.Processed, result.Failed)
	} else {
		fmt.Fprintf(env.Stdout, "Processed %d files\n", result.Processed)
	}

	if common.verbose {
		fmt.Fprintf(env.Stdout, "Finished in %v\n", elapsed.Round(time.Millisecond))
	}
}
