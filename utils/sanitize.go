package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richText  = bluemonday.UGCPolicy()
	plainText = bluemonday.StrictPolicy()
)

// Sanitize cleans rich-text editor HTML (post bodies, comments) to prevent
// XSS while keeping the formatting tags the editor emits.
func Sanitize(input string) string {
	return richText.Sanitize(input)
}

// Excerpt strips all markup and truncates to at most n runes, for the post
// previews on the index page.
func Excerpt(input string, n int) string {
	text := strings.TrimSpace(plainText.Sanitize(input))
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
