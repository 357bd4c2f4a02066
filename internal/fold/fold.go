// Package fold computes comparison keys for names that must be unique
// regardless of letter case and accent marks.
//
// Two names are equivalent when their keys are equal:
//
//	fold.Key("Fantasy") == fold.Key("fantasy")  // true
//	fold.Key("Café")    == fold.Key("cafe")     // true
//	fold.Key("Sci-Fi")  == fold.Key("Sci Fi")   // false
//
// Only case and nonspacing marks are dropped. Whitespace, punctuation and
// digits stay significant, so the key behaves like a secondary-strength
// collation folded to a single byte string that any store can index.
package fold

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key returns the folded comparison key for s.
func Key(s string) string {
	// Transformers carry state, so each call builds its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
