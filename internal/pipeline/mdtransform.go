package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through goldmark unchanged and are turned into <mark> tags
// after HTML generation by ConvertMarkPlaceholders.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Precompiled source patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Leading filepath annotations left by editors: "// filepath: ..." and
	// "<!-- filepath: ... -->", each only when it is the very first line.
	lineCommentFilepath = regexp.MustCompile(`\A// filepath:.*?\n`)
	htmlCommentFilepath = regexp.MustCompile(`\A<!-- filepath:.*?-->\n`)

	// Markdown link targets ending in .md
	markdownLinkTarget = regexp.MustCompile(`\]\(([^)]+)\.md\)`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor prepares a content file for conversion.
type SourcePreprocessor struct {
	// Marks enables ==text== highlight syntax.
	Marks bool
}

// PreprocessMarkdown normalizes line endings, strips a leading filepath
// annotation and rewrites .md link targets to .html.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = StripFilepathComment(content)
	content = RewriteMarkdownLinks(content)
	if p.Marks {
		content = ConvertHighlights(content)
	}
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// StripFilepathComment removes a leading "// filepath:" line and then a
// leading "<!-- filepath: -->" line. Each must end with a newline.
func StripFilepathComment(content string) string {
	content = lineCommentFilepath.ReplaceAllString(content, "")
	return htmlCommentFilepath.ReplaceAllString(content, "")
}

// RewriteMarkdownLinks turns ](target.md) into ](target.html).
func RewriteMarkdownLinks(content string) string {
	return markdownLinkTarget.ReplaceAllString(content, "](${1}.html)")
}

// ConvertHighlights transforms ==text== into placeholder markers.
func ConvertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"${1}"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after HTML conversion to finish the ==text== feature without
// requiring raw HTML passthrough.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*SourcePreprocessor)(nil)
