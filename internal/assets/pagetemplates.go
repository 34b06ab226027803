package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// PageTemplates holds the templates a site build renders pages with.
type PageTemplates struct {
	Base       string // Base page template, always present
	Navigation string // Navigation partial, empty when unavailable

	// NavigationErr records why the navigation partial could not be
	// loaded, other than it simply not existing. Navigation is then empty.
	NavigationErr error
}

// LoadPageTemplates loads the required base template and the optional
// navigation partial. A missing or unreadable partial degrades to no
// navigation; an empty navName skips it entirely.
func LoadPageTemplates(loader TemplateLoader, baseName, navName string) (*PageTemplates, error) {
	base, err := loader.LoadTemplate(baseName)
	if err != nil {
		return nil, fmt.Errorf("loading base template: %w", err)
	}

	pt := &PageTemplates{Base: base}
	if navName == "" {
		return pt, nil
	}

	nav, err := loader.LoadTemplate(navName)
	switch {
	case err == nil:
		pt.Navigation = nav
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, fs.ErrNotExist):
		// Optional partial.
	default:
		pt.NavigationErr = err
	}
	return pt, nil
}
