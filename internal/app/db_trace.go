package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

// formatDBQueryForTrace puts a statement on one line for span attributes.
// Line comments are dropped and long statements are cut on a rune boundary.
func formatDBQueryForTrace(query string) string {
	var b strings.Builder
	b.Grow(min(len(query), maxTracedQueryLength+8))

	for line := range strings.Lines(query) {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(field)
		}
	}

	flat := b.String()
	if len(flat) <= maxTracedQueryLength {
		return flat
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(flat[cut]) {
		cut--
	}
	return flat[:cut] + "..."
}
