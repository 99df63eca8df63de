package hellodict

import "context"

// Dictionary answers word and pattern queries against a loaded corpus.
// Every query may suspend until the corpus finishes loading.
type Dictionary interface {
	// FindWord returns the transformed entries of every headword sharing
	// the normalized key of word. An unknown word returns an empty slice.
	// Returns EUNAVAILABLE if the corpus could not be loaded.
	FindWord(ctx context.Context, word string) ([]string, error)

	// PatternMatch returns the lowercase headwords matching a wildcard
	// pattern, where '?' matches one character and '*' matches any run.
	// Returns EUNAVAILABLE if the corpus could not be loaded.
	PatternMatch(ctx context.Context, pattern string) ([]string, error)

	// State returns the current load state.
	State() State
}
