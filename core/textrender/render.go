// Package textrender converts the portal's constrained plain-text grammar
// into HTML fragments. The grammar is line oriented: "**Title**" lines are
// headings, "- item" and "1. item" lines are list items, anything else is a
// paragraph; "**bold**" spans are recognized inline.
//
// All literal text is HTML-escaped before markup substitution, so the output
// only ever contains the tags this package emits.
package textrender

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldRegex     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	numberedRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
)

// renderInline escapes literal text and substitutes **bold** spans.
func renderInline(s string) string {
	return boldRegex.ReplaceAllString(html.EscapeString(s), "<strong>$1</strong>")
}

// Render transforms content into an HTML fragment, block by block. It never
// fails for any input: a malformed line at worst renders as a paragraph.
func Render(content string) string {
	if content == "" {
		return ""
	}

	var b strings.Builder
	var list []string

	flushList := func() {
		if len(list) == 0 {
			return
		}
		b.WriteString("<ul>")
		for _, item := range list {
			b.WriteString("<li>")
			b.WriteString(item)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		list = list[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushList()
			b.WriteString("<br>")
		// the length guard keeps bare ** and *** out of the heading case:
		// their markers would overlap and there is no title text to show
		case len(trimmed) >= 4 && strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**"):
			flushList()
			b.WriteString("<h3>")
			b.WriteString(html.EscapeString(strings.TrimSpace(trimmed[2 : len(trimmed)-2])))
			b.WriteString("</h3>")
		case strings.HasPrefix(trimmed, "- "):
			list = append(list, renderInline(trimmed[2:]))
		case numberedRegex.MatchString(trimmed):
			// numbered items share the bulleted buffer: the numbering is
			// dropped and both kinds render in one unordered list
			list = append(list, renderInline(numberedRegex.FindStringSubmatch(trimmed)[2]))
		default:
			flushList()
			b.WriteString("<p>")
			b.WriteString(renderInline(trimmed))
			b.WriteString("</p>")
		}
	}
	flushList()

	return b.String()
}
