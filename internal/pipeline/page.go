package pipeline

import (
	"unicode"
	"unicode/utf8"

	"github.com/evanshlee/evanshlee.github.io/internal/tmpl"
)

// PageBuilder composes the base page template, the optional navigation
// partial and converted content into a complete HTML document.
type PageBuilder struct {
	base       string
	navigation string
	siteTitle  string
	toc        *TOCOptions
}

// NewPageBuilder creates a PageBuilder. An empty navigation template disables
// section navigation. A nil toc disables the {{toc}} value.
func NewPageBuilder(base, navigation, siteTitle string, toc *TOCOptions) *PageBuilder {
	return &PageBuilder{
		base:       base,
		navigation: navigation,
		siteTitle:  siteTitle,
		toc:        toc,
	}
}

// BuildPage renders a page. An empty section means the page belongs to no
// section: it gets no navigation and showSuffix is false.
func (b *PageBuilder) BuildPage(title, bodyHTML, section string) string {
	var navigation string
	if section != "" && b.navigation != "" {
		navigation = tmpl.Render(b.navigation, tmpl.Context{
			"section":      section,
			"sectionTitle": Capitalize(section),
		})
	}

	var toc string
	if b.toc != nil {
		toc = BuildTOC(ExtractHeadings(bodyHTML, b.toc.MinDepth, b.toc.MaxDepth), b.toc.Title)
	}

	return tmpl.Render(b.base, tmpl.Context{
		"title":      title,
		"navigation": navigation,
		"content":    bodyHTML,
		"showSuffix": section != "",
		"siteTitle":  b.siteTitle,
		"toc":        toc,
	})
}

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
