// Package search filters the lines of a text blob by substring.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/TimelordUK/minigrep/internal/index"
)

// Search returns every line of contents containing query, trimmed of
// surrounding whitespace, in source order.
func Search(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return CaseSensitive(query, contents)
	}
	return CaseInsensitive(query, contents)
}

// CaseSensitive matches query against each line byte for byte
func CaseSensitive(query, contents string) []string {
	lines := index.Build(contents)

	results := []string{}
	for i := 0; i < lines.LineCount(); i++ {
		line := lines.Line(i)
		if strings.Contains(line, query) {
			results = append(results, strings.TrimSpace(line))
		}
	}
	return results
}

// CaseInsensitive lowercases query and each line before testing containment.
// Lowercasing is a per-rune mapping, not Unicode case folding.
func CaseInsensitive(query, contents string) []string {
	query = toLower(query)

	lines := index.Build(contents)

	results := []string{}
	for i := 0; i < lines.LineCount(); i++ {
		line := lines.Line(i)
		if strings.Contains(toLower(line), query) {
			results = append(results, strings.TrimSpace(line))
		}
	}
	return results
}

// toLower is strings.ToLower except that bytes which are not valid UTF-8 are
// kept as they are instead of becoming U+FFFD.
func toLower(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}
