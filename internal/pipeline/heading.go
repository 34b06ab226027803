package pipeline

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// HeadingAnchorClass is the class set on the self-link inside each heading.
const HeadingAnchorClass = "heading-anchor"

// headingRendererPriority overrides goldmark's default HTML renderer (1000).
const headingRendererPriority = 500

// HeadingFunc renders a heading from its depth and inline fragments.
// Non-text fragments are passed as empty strings.
type HeadingFunc func(depth int, fragments []string) string

// RenderHeading produces an anchored heading whose id is the slug of its text
// and whose visible text links back to that id.
func RenderHeading(depth int, fragments []string) string {
	text := strings.Join(fragments, "")
	slug := Slugify(text)
	level := HeadingLevel(depth)
	return fmt.Sprintf(`<h%d id="%s"><a href="#%s" class="%s">%s</a></h%d>`,
		level, slug, slug, HeadingAnchorClass, html.EscapeString(text), level)
}

// HeadingLevel clamps depth to a valid heading level, defaulting to 1.
func HeadingLevel(depth int) int {
	if depth < 1 || depth > 6 {
		return 1
	}
	return depth
}

// headingNodeRenderer installs a HeadingFunc into goldmark for ast.KindHeading.
type headingNodeRenderer struct {
	render HeadingFunc
}

// newHeadingNodeRenderer wraps fn as a prioritized goldmark node renderer.
func newHeadingNodeRenderer(fn HeadingFunc) util.PrioritizedValue {
	if fn == nil {
		fn = RenderHeading
	}
	return util.Prioritized(&headingNodeRenderer{render: fn}, headingRendererPriority)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *headingNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *headingNodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Heading)
	if _, err := w.WriteString(r.render(n.Level, headingFragments(n, source))); err != nil {
		return ast.WalkStop, err
	}
	if err := w.WriteByte('\n'); err != nil {
		return ast.WalkStop, err
	}

	// Children are already flattened into the fragments.
	return ast.WalkSkipChildren, nil
}

// headingFragments flattens the inline children of a heading into plain text
// fragments. Containers (emphasis, links, code spans) contribute the text of
// their descendants; raw HTML and other leaves contribute "". Backslash
// escapes and entity references are resolved the way goldmark renders text,
// except inside code spans, which keep their source verbatim.
func headingFragments(n ast.Node, source []byte) []string {
	return appendFragments(nil, n, source, false)
}

func appendFragments(fragments []string, n ast.Node, source []byte, verbatim bool) []string {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			value := v.Segment.Value(source)
			if !verbatim {
				value = plainText(value)
			}
			fragments = append(fragments, string(value))
		case *ast.String:
			fragments = append(fragments, string(v.Value))
		case *ast.AutoLink:
			fragments = append(fragments, string(v.Label(source)))
		case *ast.RawHTML:
			fragments = append(fragments, "")
		case *ast.CodeSpan:
			fragments = appendFragments(fragments, c, source, true)
		default:
			if c.HasChildren() {
				fragments = appendFragments(fragments, c, source, verbatim)
			} else {
				fragments = append(fragments, "")
			}
		}
	}
	return fragments
}

// plainText removes backslash escapes and decodes character references.
func plainText(b []byte) []byte {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	return util.ResolveEntityNames(b)
}

// Compile-time interface check.
var _ renderer.NodeRenderer = (*headingNodeRenderer)(nil)
