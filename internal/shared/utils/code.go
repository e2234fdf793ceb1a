package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateCode derives the duplicate-check code for an entity name.
// Lowercase, runs of non-alphanumeric characters collapse to a single
// hyphen, leading/trailing hyphens are stripped. Idempotent.
func GenerateCode(name string) string {
	code := strings.ToLower(name)
	code = nonAlphanumeric.ReplaceAllString(code, "-")
	return strings.Trim(code, "-")
}
