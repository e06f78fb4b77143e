// Package seo implements the pure transforms that derive SEO metadata
// documents from catalogue streams and categories.
package seo

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes to NFD and removes combining diacritical marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts display text into a lowercase, accent-stripped,
// URL-safe token. Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Transform only fails on malformed UTF-8; the non-slug
		// replacement below still yields a safe token from the input.
		stripped = text
	}

	slug := strings.ToLower(stripped)
	slug = nonSlugRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
