package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps text to the form used for substring comparison.
// It is applied to both the term and every field value.
type Normalizer func(string) string

// FoldCase applies Unicode case folding, so "TRẦN" and "trần" compare equal.
func FoldCase(s string) string {
	// Casers keep state and must not be shared between goroutines.
	return cases.Fold().String(s)
}

// FoldDiacritics folds case and strips combining marks, so "tran" matches
// "Trần". Vietnamese đ/Đ has no decomposition and is mapped to d explicitly.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	stripped = strings.NewReplacer("đ", "d", "Đ", "D").Replace(stripped)
	return FoldCase(stripped)
}
