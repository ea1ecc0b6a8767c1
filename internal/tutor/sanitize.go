package tutor

import (
	"regexp"
	"strings"
)

var (
	markdownSymbols = regexp.MustCompile("[#_~`<>|•]")
	leadingBullets  = regexp.MustCompile(`(?m)^[ \t]*[-+][ \t]+`)
)

// Sanitize strips markdown formatting from model output so clients can
// render it as plain text. Asterisks go first (models love bolding), then
// the remaining markdown symbols, then leading bullet markers. Numbered
// lists are preserved. Sanitize is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "*", "")
	text = markdownSymbols.ReplaceAllString(text, "")
	text = leadingBullets.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
