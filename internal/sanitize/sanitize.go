package sanitize

import (
	"regexp"
	"strings"
)

// Scraped review text often arrives with leftover markup and hard line
// breaks that confuse the classifier prompt.
var (
	tagPattern        = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes one raw input text: strips markup tags and collapses
// runs of whitespace to single spaces.
func Clean(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
