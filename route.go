package site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

const (
	indexFileName     = "index.md"
	markdownExtension = ".md"
	htmlExtension     = ".html"
)

// Route is where a source file is written and how its page is labelled.
type Route struct {
	OutputPath string // Destination HTML file
	Title      string // Page title
	Section    string // Navigation section, empty for the root index
}

// RouteResolver derives routes for source files.
type RouteResolver struct {
	// SiteTitle is the title of the content root's own index page.
	SiteTitle string
}

// ResolveRoute resolves a route using DefaultSiteTitle.
func ResolveRoute(sourcePath, contentRoot, outputRoot string) (Route, error) {
	return RouteResolver{SiteTitle: DefaultSiteTitle}.Resolve(sourcePath, contentRoot, outputRoot)
}

// Resolve maps sourcePath, which must lie under contentRoot, to its route.
//
// The output path mirrors the source's position under contentRoot beneath
// outputRoot, with a trailing .md replaced by .html. The section is the name
// of the file's parent directory, except for contentRoot/index.md which has
// none. Index files are titled after their section (or SiteTitle at the
// root); other files after their name without the .md extension.
func (r RouteResolver) Resolve(sourcePath, contentRoot, outputRoot string) (Route, error) {
	if !fileutil.IsWithin(sourcePath, contentRoot) {
		return Route{}, fmt.Errorf("%w: %s not under %s", ErrOutsideContentRoot, sourcePath, contentRoot)
	}
	rel, err := filepath.Rel(contentRoot, sourcePath)
	if err != nil || rel == "." {
		return Route{}, fmt.Errorf("%w: %s is not a file under %s", ErrOutsideContentRoot, sourcePath, contentRoot)
	}

	outRel := rel
	if strings.HasSuffix(outRel, markdownExtension) {
		outRel = strings.TrimSuffix(outRel, markdownExtension) + htmlExtension
	}

	base := filepath.Base(sourcePath)
	isIndex := base == indexFileName
	atRoot := filepath.Dir(rel) == "."

	route := Route{OutputPath: filepath.Join(outputRoot, outRel)}

	switch {
	case isIndex && atRoot:
		route.Title = r.SiteTitle
	case isIndex:
		route.Section = parentName(sourcePath)
		route.Title = pipeline.Capitalize(route.Section)
	default:
		route.Section = parentName(sourcePath)
		route.Title = strings.TrimSuffix(base, markdownExtension)
	}

	return route, nil
}

// parentName returns the base name of the directory containing path.
func parentName(path string) string {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Base(dir)
}
