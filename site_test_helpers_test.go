package site

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

const testBaseTemplate = `<title>{{title}}{{#if showSuffix}} | {{siteTitle}}{{/if}}</title>{{navigation}}{{toc}}<main>{{content}}</main>`

const testNavTemplate = `<nav>{{sectionTitle}}</nav>`

// testSite is a project laid out in a temp dir.
type testSite struct {
	dir string
}

func (s testSite) path(parts ...string) string {
	return filepath.Join(append([]string{s.dir}, parts...)...)
}

func (s testSite) content() string   { return s.path("content") }
func (s testSite) output() string    { return s.path("dist") }
func (s testSite) templates() string { return s.path("templates") }
func (s testSite) styles() string    { return s.path("styles") }
func (s testSite) rootIndex() string { return s.path("index.md") }

// options points a Builder at the site, followed by extra.
func (s testSite) options(extra ...Option) []Option {
	opts := []Option{
		WithContentDir(s.content()),
		WithOutputDir(s.output()),
		WithTemplatesDir(s.templates()),
		WithStylesDir(s.styles()),
		WithRootIndex(s.rootIndex()),
	}
	return append(opts, extra...)
}

// newTestSite creates templates, styles and the given files (relative
// slash paths to contents).
func newTestSite(t *testing.T, files map[string]string) testSite {
	t.Helper()

	s := testSite{dir: t.TempDir()}
	writeFile(t, s.path("templates", "base.html"), testBaseTemplate)
	writeFile(t, s.path("templates", "partials", "navigation.html"), testNavTemplate)
	writeFile(t, s.path("styles", "main.css"), "body { margin: 0; }\n")

	for rel, content := range files {
		writeFile(t, s.path(filepath.FromSlash(rel)), content)
	}
	return s
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// snapshot returns every file under dir keyed by slash-separated relative path.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = readFile(t, path)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", dir, err)
	}
	return files
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q\ngot:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("output should not contain %q\ngot:\n%s", unwanted, got)
	}
}

// failingConverter fails on content containing marker and delegates
// everything else to goldmark.
type failingConverter struct {
	marker string
	next   pipeline.HTMLConverter
}

var errConversionStub = errors.New("stub conversion failure")

func newFailingConverter(marker string) *failingConverter {
	return &failingConverter{
		marker: marker,
		next:   pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{RawHTML: true}),
	}
}

func (c *failingConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if strings.Contains(content, c.marker) {
		return "", errConversionStub
	}
	return c.next.ToHTML(ctx, content)
}

// mapLoader serves templates from memory.
type mapLoader map[string]string

func (m mapLoader) LoadTemplate(name string) (string, error) {
	content, ok := m[name]
	if !ok {
		return "", fs.ErrNotExist
	}
	return content, nil
}
