package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Notes:
// - Unreadable template files (permission errors) are not tested: running as
//   root makes chmod-based tests unreliable.

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// LoadTemplate
// ---------------------------------------------------------------------------

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "base.html"), "<main>{{content}}</main>")
	writeTestFile(t, filepath.Join(dir, "partials", "navigation.html"), "<nav>{{section}}</nav>")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr error
	}{
		{name: "top-level template", tmpl: "base.html", want: "<main>{{content}}</main>"},
		{name: "nested partial", tmpl: "partials/navigation.html", want: "<nav>{{section}}</nav>"},
		{name: "missing template", tmpl: "missing.html", wantErr: ErrTemplateNotFound},
		{name: "parent traversal", tmpl: "../base.html", wantErr: ErrInvalidTemplateName},
		{name: "absolute name", tmpl: "/etc/passwd", wantErr: ErrInvalidTemplateName},
		{name: "empty name", tmpl: "", wantErr: ErrInvalidTemplateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.tmpl)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTemplate(%q) error = %v, want %v", tt.tmpl, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.tmpl, err)
			}
			if got != tt.want {
				t.Errorf("LoadTemplate(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeTestFile(t, filepath.Join(outside, "secret.html"), "secret")

	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "secret.html"), filepath.Join(dir, "link.html")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.LoadTemplate("link.html")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTemplate(symlink) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
