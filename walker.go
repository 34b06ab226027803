package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
	"github.com/evanshlee/evanshlee.github.io/internal/logfields"
	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

// SourceFile is a Markdown file found for rendering.
type SourceFile struct {
	Path        string // Path to the .md file
	ContentRoot string // Root the file's route is resolved against
}

// FileResult holds the outcome of rendering one source file.
type FileResult struct {
	Source   string
	Output   string // Empty when the route could not be resolved
	Section  string
	Err      error
	Duration time.Duration
}

// discoverSources walks contentRoot depth-first in lexical order and returns
// every regular .md file. When sections is non-empty only those top-level
// directories are walked. Directories that cannot be listed are logged and
// skipped.
func (b *Builder) discoverSources(contentRoot string, sections []string) []SourceFile {
	var files []SourceFile

	if len(sections) == 0 {
		b.walkDir(contentRoot, contentRoot, &files)
		return files
	}

	for _, name := range sections {
		dir := filepath.Join(contentRoot, name)
		if !fileutil.DirExists(dir) {
			b.logger.Warn("section directory not found", logfields.Section(name), logfields.Path(dir))
			continue
		}
		b.walkDir(dir, contentRoot, &files)
	}
	return files
}

func (b *Builder) walkDir(dir, contentRoot string, files *[]SourceFile) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		b.logger.Error("cannot read directory", logfields.Path(dir), logfields.Error(err))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			b.walkDir(path, contentRoot, files)
		case entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), markdownExtension):
			*files = append(*files, SourceFile{Path: path, ContentRoot: contentRoot})
		}
	}
}

// renderBatch renders files with up to workers goroutines. Results are
// returned in the order of files. Once ctx is done, remaining files are
// reported with ctx.Err() without being read.
func (b *Builder) renderBatch(ctx context.Context, r *renderer, files []SourceFile, workers int) []FileResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]FileResult, len(files))

	if workers <= 1 {
		for i, f := range files {
			results[i] = b.renderOrCancel(ctx, r, f)
		}
		return results
	}

	concurrency := min(workers, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = b.renderOrCancel(ctx, r, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func (b *Builder) renderOrCancel(ctx context.Context, r *renderer, f SourceFile) FileResult {
	if err := ctx.Err(); err != nil {
		return FileResult{Source: f.Path, Err: err}
	}
	return r.renderFile(ctx, f)
}

// renderFile runs the per-file pipeline: route, read, transform, convert,
// compose, write. All failures are returned in the result.
func (r *renderer) renderFile(ctx context.Context, f SourceFile) (result FileResult) {
	start := time.Now()
	result.Source = f.Path
	defer func() { result.Duration = time.Since(start) }()

	route, err := r.routes.Resolve(f.Path, f.ContentRoot, r.outputRoot)
	if err != nil {
		result.Err = err
		return result
	}
	result.Output = route.OutputPath
	result.Section = route.Section

	content, err := os.ReadFile(f.Path) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSource, err)
		return result
	}

	markdown := r.preprocessor.PreprocessMarkdown(ctx, string(content))

	body, err := r.converter.ToHTML(ctx, markdown)
	if err != nil {
		result.Err = fmt.Errorf("converting %s: %w", f.Path, err)
		return result
	}
	if r.marks {
		body = pipeline.ConvertMarkPlaceholders(body)
	}

	page := r.pages.BuildPage(route.Title, body, route.Section)

	if err := fileutil.WriteFile(route.OutputPath, []byte(page)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}

	return result
}
