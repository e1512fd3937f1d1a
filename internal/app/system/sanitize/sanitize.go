// internal/app/system/sanitize/sanitize.go

// Package sanitize cleans free-text user input before it is forwarded
// upstream. Review comments, bios, and similar fields are plain text, so
// everything tag-shaped is stripped rather than allow-listed.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all HTML from s and returns trimmed plain text. The strict
// policy escapes entities while stripping, so the result is unescaped back
// to the literal characters the user typed.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
