package pipeline

import (
	"regexp"
	"strings"
)

// Slug patterns. \w and \s are ASCII-only classes in RE2.
var (
	slugTagPattern     = regexp.MustCompile(`<[^>]*>`)
	slugInvalidPattern = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace     = regexp.MustCompile(`\s+`)
	slugEdgeHyphens    = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts heading text into a URL-safe anchor id.
//
// The text is lowercased, embedded tags are stripped, characters other than
// word characters, whitespace and hyphens are dropped, whitespace runs become
// a single hyphen and leading/trailing hyphens are trimmed. The result may be
// empty. Identical headings yield identical slugs; no deduplication is done.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugTagPattern.ReplaceAllString(s, "")
	s = slugInvalidPattern.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return slugEdgeHyphens.ReplaceAllString(s, "")
}
