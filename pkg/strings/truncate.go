// Package strings holds small text helpers for rendering unit names in
// fixed-width output.
package strings

import (
	"fmt"
	"strings"
)

// DefaultCellMaxLen is the default maximum width of a table cell.
const DefaultCellMaxLen = 60

// MinTruncateLen is the smallest maxLen Truncate accepts; smaller values
// would not leave room for one character plus "...".
const MinTruncateLen = 4

// Truncate shortens s to at most maxLen runes, ending it with "..." when
// something was cut. Whitespace runs, newlines included, collapse to a
// single space so the result always fits on one line.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// JoinNames joins names with ", ". When the result would be longer than
// maxLen runes, as many leading names as fit are kept and the rest are
// counted, as in "Http, Https (+3 more)". A first name that alone is too
// long is truncated.
func JoinNames(names []string, maxLen int) string {
	joined := strings.Join(names, ", ")
	if len([]rune(joined)) <= maxLen || len(names) == 0 {
		return joined
	}

	for keep := len(names) - 1; keep > 0; keep-- {
		candidate := fmt.Sprintf("%s (+%d more)", strings.Join(names[:keep], ", "), len(names)-keep)
		if len([]rune(candidate)) <= maxLen {
			return candidate
		}
	}
	return Truncate(joined, maxLen)
}
