// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWordChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Make lowercases the title, strips everything outside word characters,
// whitespace and hyphens, collapses whitespace runs into single hyphens and
// trims leading/trailing hyphens. The result may be empty; uniqueness is the
// caller's concern.
func Make(title string) string {
	s := strings.ToLower(title)
	s = nonWordChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.Trim(s, "-")
}
