// Package corpus assembles the load pipeline: it fetches a compressed
// corpus, decompresses it and parses the headword → entries JSON object
// while preserving document order.
package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/hellodict"
	"golang.org/x/sync/errgroup"
)

// Ensure Loader implements hellodict.Loader at compile time.
var _ hellodict.Loader = (*Loader)(nil)

// Loader runs fetch → decompress → parse for a source.
type Loader struct {
	Fetcher      hellodict.Fetcher
	Decompressor hellodict.Decompressor
}

// Load fetches src and returns the parsed corpus. Parsing and fingerprinting
// run concurrently over the decompressed bytes.
func (l *Loader) Load(ctx context.Context, src hellodict.Source) (*hellodict.Corpus, error) {
	compressed, err := l.Fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}

	raw, err := l.Decompressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress corpus: %w", err)
	}

	var (
		c           *hellodict.Corpus
		fingerprint uint64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = Parse(gctx, bytes.NewReader(raw))
		return err
	})
	g.Go(func() error {
		fingerprint = xxhash.Sum64(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	c.Fingerprint = fingerprint
	return c, nil
}

// Parse decodes a JSON object mapping headwords to arrays of entry HTML.
// Headwords keep the order in which they first appear. A repeated headword
// keeps its first position and takes the last value, as a JSON object would.
func Parse(ctx context.Context, r io.Reader) (*hellodict.Corpus, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	c := &hellodict.Corpus{
		Entries: make(map[string][]string),
	}
	for i := 0; dec.More(); i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, invalid(err)
		}
		headword, ok := tok.(string)
		if !ok {
			return nil, hellodict.Errorf(hellodict.EINVALID, "corpus: expected headword, got %v", tok)
		}

		var entries []string
		if err := dec.Decode(&entries); err != nil {
			return nil, hellodict.Errorf(hellodict.EINVALID, "corpus: entries of %q: %v", headword, err)
		}

		if _, seen := c.Entries[headword]; !seen {
			c.Headwords = append(c.Headwords, headword)
		}
		if entries == nil {
			entries = []string{}
		}
		c.Entries[headword] = entries
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, hellodict.Errorf(hellodict.EINVALID, "corpus: trailing data after object")
	}

	return c, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return invalid(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return hellodict.Errorf(hellodict.EINVALID, "corpus: expected %q, got %v", want, tok)
	}
	return nil
}

func invalid(err error) error {
	if err == io.EOF {
		return hellodict.Errorf(hellodict.EINVALID, "corpus: unexpected end of data")
	}
	return hellodict.Errorf(hellodict.EINVALID, "corpus: %v", err)
}
