// Package text provides display-width-aware string helpers.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace replaces runs of whitespace with single spaces and
// trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most width display columns, appending "..." when
// anything was removed. Width is measured in terminal columns so CJK and
// other wide runes count double.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}
