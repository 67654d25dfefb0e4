// Package sanitize runs every stored rich-text field through an allow-listed
// HTML sanitizer. Content is admin-authored today, but documents come back
// from a schemaless store and are rendered as markup, so nothing is trusted
// at the parse boundary.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy = newRichPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("target").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// HTML sanitizes rich-text content, keeping the usual formatting tags and
// dropping everything executable.
func HTML(s string) string {
	return richPolicy.Sanitize(s)
}

// Text strips all markup, for plain-text contexts such as the pre-filled
// chat message built from a product description.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
