package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
)

//go:embed all:starter
var starter embed.FS

// starterRoot is the embedded directory holding the starter site.
const starterRoot = "starter"

// EmbeddedLoader loads templates from the embedded starter site.
// Implements TemplateLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a starter template by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	content, err := starter.ReadFile(path.Join(starterRoot, "templates", name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// StarterFile reports one file considered by WriteStarter.
type StarterFile struct {
	Path    string // Destination path on disk
	Skipped bool   // True when the file already existed
}

// WriteStarter copies the starter site into dir. Existing files are never
// overwritten; they are reported as skipped.
func WriteStarter(dir string) ([]StarterFile, error) {
	var files []StarterFile

	err := fs.WalkDir(starter, starterRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(starterRoot, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, rel)

		if _, err := os.Stat(dst); err == nil {
			files = append(files, StarterFile{Path: dst, Skipped: true})
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", dst, err)
		}

		data, err := starter.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		if err := fileutil.WriteFile(dst, data); err != nil {
			return err
		}
		files = append(files, StarterFile{Path: dst})
		return nil
	})

	return files, err
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
