package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion. Implementations return
// an HTML fragment, not a full document; the page template supplies the rest.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// ConverterOptions configures a GoldmarkConverter.
type ConverterOptions struct {
	// Heading overrides heading rendering. Nil means RenderHeading.
	Heading HeadingFunc
	// RawHTML passes inline and block HTML through unchanged.
	RawHTML bool
	// Highlight enables chroma syntax highlighting of fenced code blocks.
	Highlight bool
	// HighlightStyle selects a chroma style. Empty emits CSS classes
	// instead of inline styles so a site stylesheet can theme code.
	HighlightStyle string
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// the heading hook installed.
func NewGoldmarkConverter(opts ConverterOptions) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if opts.Highlight {
		extensions = append(extensions, newHighlighting(opts.HighlightStyle))
	}

	rendererOpts := []renderer.Option{
		renderer.WithNodeRenderers(newHeadingNodeRenderer(opts.Heading)),
	}
	if opts.RawHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// newHighlighting builds the fenced-code highlighter.
func newHighlighting(style string) goldmark.Extender {
	if style == "" {
		return highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		)
	}
	return highlighting.NewHighlighting(
		highlighting.WithStyle(style),
	)
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
