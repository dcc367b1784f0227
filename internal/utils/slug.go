// Package utils holds small helpers shared across the application.
package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe subdomain label from a café's display name:
// lowercase, runs of anything outside [a-z0-9] collapsed to single hyphens,
// leading and trailing hyphens trimmed. The result may be empty when the name
// contains no usable characters; callers must treat that as invalid input.
// A café's slug is derived exactly once, at creation, and never changes.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
