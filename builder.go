package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/evanshlee/evanshlee.github.io/internal/assets"
	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
	"github.com/evanshlee/evanshlee.github.io/internal/logfields"
	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

// stylesOutputDir is the directory under the output root receiving styles.
const stylesOutputDir = "styles"

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ TemplateLoader                = (*assets.FilesystemLoader)(nil)
)

// Builder renders a content tree into a static site.
// Create with NewBuilder and call Build for each run; a Builder holds no
// state between runs.
type Builder struct {
	cfg           builderConfig
	logger        *slog.Logger
	htmlConverter pipeline.HTMLConverter
}

// NewBuilder creates a Builder for the default layout, adjusted by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cfg:    defaultBuilderConfig(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.htmlConverter == nil {
		b.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			RawHTML:        b.cfg.markdown.RawHTML,
			Highlight:      b.cfg.markdown.Highlight,
			HighlightStyle: b.cfg.markdown.HighlightStyle,
		})
	}

	return b
}

// BuildResult summarizes a build.
type BuildResult struct {
	Files     []FileResult // One entry per source file, in processing order
	Processed int          // Files written successfully
	Failed    int          // Files that failed
	Duration  time.Duration
}

// renderer carries the per-build state shared by every file: loaded
// templates, route rules and the converter. It is read-only once built.
type renderer struct {
	routes       RouteResolver
	outputRoot   string
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	pages        *pipeline.PageBuilder
	marks        bool
}

// Build runs the pipeline once. It returns an error only for setup
// failures; per-file failures are reported in the result.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	if err := fileutil.EnsureDir(b.cfg.outputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	if err := b.copyStyles(); err != nil {
		return nil, err
	}

	r, err := b.newRenderer()
	if err != nil {
		return nil, err
	}

	files := b.collectSources()
	workers := b.cfg.workers
	if b.warnCollisions(r, files) && workers > 1 {
		// Keep "later source wins" deterministic.
		workers = 1
	}

	b.logger.Debug("rendering", logfields.Count(len(files)), logfields.Workers(workers))
	results := b.renderBatch(ctx, r, files, workers)

	result := &BuildResult{Files: results}
	for _, fr := range results {
		if fr.Err != nil {
			result.Failed++
			b.logger.Error("failed to process file", logfields.Source(fr.Source), logfields.Error(fr.Err))
			continue
		}
		result.Processed++
		b.logger.Info("created", logfields.Output(fr.Output), logfields.Duration(fr.Duration))
	}
	result.Duration = time.Since(start)

	b.logger.Info("build finished",
		logfields.Count(result.Processed),
		logfields.Failed(result.Failed),
		logfields.Duration(result.Duration))

	return result, nil
}

// copyStyles copies the styles directory into the output tree.
func (b *Builder) copyStyles() error {
	if b.cfg.stylesDir == "" {
		return nil
	}

	dst := filepath.Join(b.cfg.outputDir, stylesOutputDir)
	n, err := fileutil.CopyDir(b.cfg.stylesDir, dst)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStylesCopy, err)
	}
	b.logger.Info("copied styles", logfields.Path(dst), logfields.Count(n))
	return nil
}

// newRenderer loads templates and assembles the per-file pipeline.
func (b *Builder) newRenderer() (*renderer, error) {
	loader := b.cfg.templateLoader
	if loader == nil {
		fsLoader, err := assets.NewFilesystemLoader(b.cfg.templatesDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBaseTemplateNotFound, err)
		}
		loader = fsLoader
	}

	tmpls, err := assets.LoadPageTemplates(loader, b.cfg.baseTemplate, b.cfg.navTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBaseTemplateNotFound, err)
	}
	if tmpls.NavigationErr != nil {
		b.logger.Warn("navigation partial unavailable", logfields.Error(tmpls.NavigationErr))
	}

	var toc *pipeline.TOCOptions
	if b.cfg.toc != nil {
		toc = &pipeline.TOCOptions{
			Title:    b.cfg.toc.Title,
			MinDepth: b.cfg.toc.MinDepth,
			MaxDepth: b.cfg.toc.MaxDepth,
		}
	}

	return &renderer{
		routes:       RouteResolver{SiteTitle: b.cfg.siteTitle},
		outputRoot:   b.cfg.outputDir,
		preprocessor: &pipeline.SourcePreprocessor{Marks: b.cfg.markdown.Marks},
		converter:    b.htmlConverter,
		pages:        pipeline.NewPageBuilder(tmpls.Base, tmpls.Navigation, b.cfg.siteTitle, toc),
		marks:        b.cfg.markdown.Marks,
	}, nil
}

// collectSources lists the root index followed by the content tree.
// The root index is resolved against its own directory so it maps to
// <output>/index.html with no section.
func (b *Builder) collectSources() []SourceFile {
	var files []SourceFile

	if b.cfg.rootIndex != "" && fileutil.FileExists(b.cfg.rootIndex) {
		files = append(files, SourceFile{
			Path:        b.cfg.rootIndex,
			ContentRoot: filepath.Dir(b.cfg.rootIndex),
		})
	}

	if fileutil.DirExists(b.cfg.contentDir) {
		files = append(files, b.discoverSources(b.cfg.contentDir, b.cfg.sections)...)
	} else {
		b.logger.Debug("content directory not found", logfields.Path(b.cfg.contentDir))
	}

	return files
}

// warnCollisions logs sources that map to an output path already claimed by
// an earlier source and reports whether there were any. The later source
// overwrites the earlier one.
func (b *Builder) warnCollisions(r *renderer, files []SourceFile) bool {
	var found bool
	seen := make(map[string]string, len(files))
	for _, f := range files {
		route, err := r.routes.Resolve(f.Path, f.ContentRoot, r.outputRoot)
		if err != nil {
			continue
		}
		key := filepath.Clean(route.OutputPath)
		if prev, ok := seen[key]; ok {
			found = true
			b.logger.Warn("output path written twice",
				logfields.Output(route.OutputPath),
				logfields.Previous(prev),
				logfields.Source(f.Path))
		}
		seen[key] = f.Path
	}
	return found
}

// IsSetupError reports whether err aborted a build before any file was
// rendered.
func IsSetupError(err error) bool {
	return errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrStylesCopy) ||
		errors.Is(err, ErrBaseTemplateNotFound)
}
