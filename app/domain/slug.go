package domain

import (
	"regexp"
	"strings"
)

var (
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
	nonWordRegex       = regexp.MustCompile(`[^a-z0-9_-]`)
	hyphenRunRegex     = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title into a URL-safe, lowercase, hyphen-delimited
// identifier. The transform is deterministic and idempotent. It performs no
// uniqueness check, no length cap and no transliteration: non-word runes are
// dropped outright, so a title without word characters yields an empty slug.
func Slugify(s string) string {
	if s == "" {
		return ""
	}

	slug := strings.ToLower(strings.TrimSpace(s))
	slug = whitespaceRunRegex.ReplaceAllString(slug, "-")
	slug = nonWordRegex.ReplaceAllString(slug, "")
	slug = hyphenRunRegex.ReplaceAllString(slug, "-")
	slug = strings.TrimLeft(slug, "-")
	slug = strings.TrimRight(slug, "-")

	return slug
}
