// internal/assistant/normalizer/normalizer.go

// Package normalizer canonicalizes user text before any pattern matching.
package normalizer

import (
	"strings"
	"unicode"
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// Fold lower-cases, trims and collapses whitespace. Punctuation is kept so
// that span based extraction can still see clause boundaries.
func Fold(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Normalize folds text and strips punctuation and symbols. Letters, combining
// marks (Indic vowel signs, viramas), digits and the joiners used in Indic
// orthography survive. A dot between two digits is kept as a decimal point;
// apostrophes are dropped without leaving a gap.
//
// Normalize is idempotent.
func Normalize(text string) string {
	runes := []rune(strings.ToLower(text))
	var b strings.Builder
	b.Grow(len(text))

	for i, r := range runes {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), r == zwnj, r == zwj:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case r == '.' && i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]):
			b.WriteRune(r)
		case r == '\'' || r == '’':
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
