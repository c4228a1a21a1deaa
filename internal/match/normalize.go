package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// NormalizeName folds an activity or level name for comparison:
// 1. Case-fold.
// 2. Drop punctuation and separators.
// 3. Collapse runs of whitespace to one space.
func NormalizeName(s string) string {
	folded := folder.String(strings.TrimSpace(s))

	var b strings.Builder

	b.Grow(len(folded))

	space := false

	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}

			space = false

			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			space = true
		}
	}

	return b.String()
}

// EqualNames reports whether two names are the same after normalization.
func EqualNames(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
