// Package htmlsanitize cleans user-supplied HTML before it is stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy  = newRichPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th")
	return p
}

// Sanitize keeps formatting, links, lists and tables and removes scripts,
// event handlers, iframes and javascript: URLs.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return richPolicy.Sanitize(s)
}

// PlainText strips every tag and returns trimmed, unescaped text, so
// "O'Brien & Co" is stored as typed rather than as entities.
func PlainText(s string) string {
	if IsPlainText(s) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}

// IsPlainText reports whether s contains no tag-like sequence.
func IsPlainText(s string) bool {
	i := strings.IndexByte(s, '<')
	return i < 0 || !strings.Contains(s[i:], ">")
}
