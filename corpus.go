package hellodict

import "context"

// Corpus is the decompressed headword → entries dataset.
// It is never mutated after a Loader returns it.
type Corpus struct {
	// Headwords in corpus document order. Each headword appears once.
	Headwords []string

	// Entries maps a headword to its definition entries as raw HTML, one
	// per homograph or sense group.
	Entries map[string][]string

	// Fingerprint is a hash of the decompressed corpus bytes.
	Fingerprint uint64
}

// Len returns the number of headwords in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Headwords)
}

// Fetcher retrieves the raw corpus bytes for a source.
type Fetcher interface {
	// Fetch returns the bytes at src.URL. When src.Integrity is set the bytes
	// are verified against it before being returned.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, src Source) ([]byte, error)
}

// Decompressor decompresses a fetched corpus.
type Decompressor interface {
	Decompress(b []byte) ([]byte, error)
}

// Loader acquires a corpus: fetch, integrity check, decompress and parse.
type Loader interface {
	// Load returns the parsed corpus for src. Any failure is transient from
	// the caller's perspective; the load may be attempted again.
	Load(ctx context.Context, src Source) (*Corpus, error)
}
