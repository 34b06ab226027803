// Package tmpl implements the page template language: {{key}} substitution
// and {{#if key}}...{{/if}} conditional blocks.
//
// Rendering runs two passes. Conditional blocks are resolved first, matched
// non-greedily and without nesting. Remaining placeholders are then replaced
// by their values. Values are inserted verbatim: no HTML escaping is done and
// inserted text is never rescanned for placeholders.
package tmpl

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	conditionalBlock = regexp.MustCompile(`(?s)\{\{#if (\w+)\}\}(.*?)\{\{/if\}\}`)
	placeholder      = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// Context maps placeholder names to values.
type Context map[string]any

// Render evaluates templateText against ctx.
// Unknown keys render as empty strings.
func Render(templateText string, ctx Context) string {
	result := conditionalBlock.ReplaceAllStringFunc(templateText, func(block string) string {
		m := conditionalBlock.FindStringSubmatch(block)
		if Truthy(ctx[m[1]]) {
			return m[2]
		}
		return ""
	})

	return placeholder.ReplaceAllStringFunc(result, func(ph string) string {
		m := placeholder.FindStringSubmatch(ph)
		return String(ctx[m[1]])
	})
}

// Truthy reports whether v enables a conditional block.
// nil, false, "" and numeric zero are false; everything else is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

// String converts v for substitution. Values that are not Truthy render as
// "", so a false flag never prints "false".
func String(v any) string {
	if !Truthy(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
