package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("base template has placeholders", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("base.html")
		if err != nil {
			t.Fatalf("LoadTemplate(base.html) error = %v", err)
		}
		for _, want := range []string{"{{title}}", "{{content}}", "{{navigation}}", "{{#if showSuffix}}"} {
			if !strings.Contains(got, want) {
				t.Errorf("base.html missing %q", want)
			}
		}
	})

	t.Run("navigation partial", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("partials/navigation.html")
		if err != nil {
			t.Fatalf("LoadTemplate(partials/navigation.html) error = %v", err)
		}
		if !strings.Contains(got, "{{sectionTitle}}") {
			t.Errorf("navigation.html missing {{sectionTitle}}: %q", got)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("nope.html")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(nope.html) error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("../styles/main.css")
		if !errors.Is(err, ErrInvalidTemplateName) {
			t.Errorf("LoadTemplate(..) error = %v, want ErrInvalidTemplateName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// WriteStarter
// ---------------------------------------------------------------------------

func TestWriteStarter(t *testing.T) {
	t.Parallel()

	t.Run("writes full layout into empty dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		files, err := WriteStarter(dir)
		if err != nil {
			t.Fatalf("WriteStarter() error = %v", err)
		}

		for _, rel := range []string{
			"index.md",
			filepath.Join("content", "posts", "index.md"),
			filepath.Join("content", "posts", "hello.md"),
			filepath.Join("styles", "main.css"),
			filepath.Join("templates", "base.html"),
			filepath.Join("templates", "partials", "navigation.html"),
		} {
			if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
		for _, f := range files {
			if f.Skipped {
				t.Errorf("unexpected skip of %s in empty dir", f.Path)
			}
		}
	})

	t.Run("never overwrites existing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		custom := filepath.Join(dir, "index.md")
		writeTestFile(t, custom, "# Mine\n")

		files, err := WriteStarter(dir)
		if err != nil {
			t.Fatalf("WriteStarter() error = %v", err)
		}

		data, err := os.ReadFile(custom)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "# Mine\n" {
			t.Errorf("index.md overwritten: %q", data)
		}

		var skipped bool
		for _, f := range files {
			if f.Path == custom {
				skipped = f.Skipped
			}
		}
		if !skipped {
			t.Error("index.md not reported as skipped")
		}
	})
}
