package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a name and removes all whitespace from it so
// "Pre requisites: " and "prerequisites" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSpace(name)
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// MatchingName returns the first matcher contained in the normalized name,
// matchers are expected to already be normalized.
func MatchingName(name string, matchers []string) (string, bool) {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return m, true
		}
	}
	return "", false
}
