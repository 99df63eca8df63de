// Package index builds the in-memory lookup structures of a corpus: a map
// from normalized key to headwords, and a flat lowercase word list scanned by
// wildcard patterns.
package index

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key returns the normalized lookup key of word. Case, diacritics and
// whitespace runs are folded so that "Café", "cafe" and " CAFE " share a key.
//
// Key must be used both when building an index and when querying it.
func Key(word string) string {
	// Transformers hold state, so the chain is built per call.
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Fold(),
	)
	folded, _, err := transform.String(t, word)
	if err != nil {
		// Invalid input still needs a stable key.
		folded = strings.ToLower(word)
	}
	return strings.Join(strings.Fields(folded), " ")
}
