package index

import (
	"strings"

	"github.com/fwojciec/hellodict"
)

// Index is a read-only lookup structure over a corpus. It is safe for
// concurrent use once Build returns.
type Index struct {
	corpus *hellodict.Corpus

	// keys maps a normalized key to headwords in corpus order.
	keys map[string][]string

	// words holds one lowercase entry per headword in corpus order.
	words []string
}

// Build indexes every headword of c in a single pass.
// c must not be modified afterwards.
func Build(c *hellodict.Corpus) *Index {
	idx := &Index{
		corpus: c,
		keys:   make(map[string][]string, c.Len()),
		words:  make([]string, 0, c.Len()),
	}
	if c == nil {
		return idx
	}

	for _, headword := range c.Headwords {
		key := Key(headword)
		idx.keys[key] = append(idx.keys[key], headword)
		idx.words = append(idx.words, strings.ToLower(headword))
	}
	return idx
}

// Lookup returns the headwords sharing the normalized key of word.
func (idx *Index) Lookup(word string) []string {
	return idx.keys[Key(word)]
}

// Entries returns the raw entries of a headword in corpus order.
func (idx *Index) Entries(headword string) []string {
	if idx.corpus == nil {
		return nil
	}
	return idx.corpus.Entries[headword]
}

// Match returns the words matching a wildcard pattern in build order.
func (idx *Index) Match(pattern string) []string {
	re := CompilePattern(pattern)

	var matches []string
	for _, w := range idx.words {
		if re.MatchString(w) {
			matches = append(matches, w)
		}
	}
	return matches
}

// Len returns the number of indexed headwords.
func (idx *Index) Len() int {
	return len(idx.words)
}

// KeyCount returns the number of distinct normalized keys.
func (idx *Index) KeyCount() int {
	return len(idx.keys)
}

// Fingerprint returns the fingerprint of the indexed corpus.
func (idx *Index) Fingerprint() uint64 {
	if idx.corpus == nil {
		return 0
	}
	return idx.corpus.Fingerprint
}
