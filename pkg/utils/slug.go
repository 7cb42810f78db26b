package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugHyphens  = regexp.MustCompile(`[\s_-]+`)
	slugTrimEnds = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug turns a title into a URL slug: lowercased, non-word
// characters stripped, runs of whitespace collapsed to single hyphens.
// "My Retreat!! 2024" -> "my-retreat-2024".
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return slugTrimEnds.ReplaceAllString(s, "")
}
