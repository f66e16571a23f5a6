// Package topics implements the entity-extraction and phrase-aggregation
// pipeline: NER over article titles, token normalization, n-gram windowing,
// and frequency tables per phrase width.
package topics

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a raw entity string into a comparable token:
// every rune that is not a letter or digit is removed (runs of punctuation
// collapse to nothing, not to a separator) and the remainder is lowercased.
// It is total and idempotent; empty input yields empty output.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
