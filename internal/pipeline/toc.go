package pipeline

import (
	"fmt"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// TOCOptions configures the table of contents offered to page templates.
type TOCOptions struct {
	Title    string
	MinDepth int // Minimum heading level (default: 2, skips H1)
	MaxDepth int // Maximum heading level (default: 3)
}

// Heading is an anchored heading found in rendered HTML.
type Heading struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// ExtractHeadings tokenizes HTML and returns headings with an id whose level
// lies between minDepth and maxDepth, in document order.
func ExtractHeadings(htmlContent string, minDepth, maxDepth int) []Heading {
	z := nethtml.NewTokenizer(strings.NewReader(htmlContent))

	var (
		headings []Heading
		current  *Heading
		text     strings.Builder
	)

	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return headings
		case nethtml.StartTagToken:
			name, hasAttr := z.TagName()
			level := headingTagLevel(name)
			if level == 0 || current != nil {
				continue
			}
			id := ""
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "id" {
					id = string(val)
				}
			}
			if id == "" || level < minDepth || level > maxDepth {
				continue
			}
			current = &Heading{Level: level, ID: id}
			text.Reset()
		case nethtml.TextToken:
			if current != nil {
				text.Write(z.Text())
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			if current != nil && headingTagLevel(name) == current.Level {
				current.Text = strings.TrimSpace(text.String())
				headings = append(headings, *current)
				current = nil
			}
		}
	}
}

// headingTagLevel returns 1-6 for h1-h6 and 0 for any other tag.
func headingTagLevel(name []byte) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// BuildTOC renders headings as a nested-by-class list. Returns "" when there
// are no headings.
func BuildTOC(headings []Heading, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	if title != "" {
		buf.WriteString(`<h2 class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</h2>`)
	}

	buf.WriteString(`<ul class="toc-list">`)
	for _, h := range headings {
		fmt.Fprintf(&buf, `<li class="toc-level-%d"><a href="#%s">%s</a></li>`,
			h.Level, html.EscapeString(h.ID), html.EscapeString(h.Text))
	}
	buf.WriteString(`</ul></nav>`)
	return buf.String()
}
