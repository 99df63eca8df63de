package index_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorpus(headwords ...string) *hellodict.Corpus {
	c := &hellodict.Corpus{Entries: make(map[string][]string)}
	for _, h := range headwords {
		c.Headwords = append(c.Headwords, h)
		c.Entries[h] = []string{"<p>" + h + "</p>"}
	}
	return c
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("groups headwords sharing a folded key in corpus order", func(t *testing.T) {
		t.Parallel()

		idx := index.Build(newCorpus("Resume", "word", "Résumé", "resume"))

		assert.Equal(t, []string{"Resume", "Résumé", "resume"}, idx.Lookup("RESUME"))
		assert.Equal(t, []string{"Resume", "Résumé", "resume"}, idx.Lookup("résumé"))
		assert.Equal(t, []string{"word"}, idx.Lookup("Word"))
		assert.Equal(t, 4, idx.Len())
		assert.Equal(t, 2, idx.KeyCount())
	})

	t.Run("handles a nil corpus", func(t *testing.T) {
		t.Parallel()

		idx := index.Build(nil)

		assert.Zero(t, idx.Len())
		assert.Empty(t, idx.Lookup("word"))
		assert.Empty(t, idx.Entries("word"))
		assert.Zero(t, idx.Fingerprint())
	})

	t.Run("exposes the corpus fingerprint", func(t *testing.T) {
		t.Parallel()

		c := newCorpus("a")
		c.Fingerprint = 42

		assert.Equal(t, uint64(42), index.Build(c).Fingerprint())
	})
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	idx := index.Build(newCorpus("Test", "Study", "A", "a"))

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		for _, w := range []string{"Test", "test", "TEST", "tEsT"} {
			assert.Equal(t, []string{"Test"}, idx.Lookup(w), w)
		}
	})

	t.Run("returns every homograph", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"A", "a"}, idx.Lookup("a"))
	})

	t.Run("returns nothing for unknown words", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, idx.Lookup("xyz_not_in_corpus"))
	})

	t.Run("returns entries of a headword", func(t *testing.T) {
		t.Parallel()

		headwords := idx.Lookup("study")
		require.Len(t, headwords, 1)
		assert.Equal(t, []string{"<p>Study</p>"}, idx.Entries(headwords[0]))
	})
}

func TestIndex_Match(t *testing.T) {
	t.Parallel()

	idx := index.Build(newCorpus("a", "ward", "warden", "weird", "word", "padding"))

	tests := []struct {
		pattern  string
		expected []string
	}{
		{pattern: "w?rd", expected: []string{"ward", "word"}},
		{pattern: "w*rd", expected: []string{"ward", "weird", "word"}},
		{pattern: "w?rd*", expected: []string{"ward", "warden", "word"}},
		{pattern: "*no_match*", expected: nil},
		{pattern: "?;z*;z?", expected: nil},
		{pattern: "W*", expected: []string{"ward", "warden", "weird", "word"}},
	}

	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, idx.Match(test.pattern))
		})
	}
}

func TestIndex_Match_KeepsBuildOrder(t *testing.T) {
	t.Parallel()

	idx := index.Build(newCorpus("Zebra", "apple", "Mango"))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, idx.Match("*"))
}

func TestIndex_Match_IsIdempotent(t *testing.T) {
	t.Parallel()

	words := strings.Fields("ward warden weird word")
	idx := index.Build(newCorpus(words...))

	first := idx.Match("w*")
	second := idx.Match("w*")
	assert.Equal(t, first, second)
}
