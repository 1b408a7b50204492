package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a category slug from its name: lowercased, every run of
// non-alphanumerics collapsed to a single dash, edges trimmed. It is a pure
// function of the name and is recomputed on every name change.
func Slugify(name string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
