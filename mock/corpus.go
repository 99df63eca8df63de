package mock

import (
	"context"

	"github.com/fwojciec/hellodict"
)

var _ hellodict.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hellodict.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, src hellodict.Source) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, src hellodict.Source) ([]byte, error) {
	return f.FetchFn(ctx, src)
}

var _ hellodict.Decompressor = (*Decompressor)(nil)

// Decompressor is a mock implementation of hellodict.Decompressor.
type Decompressor struct {
	DecompressFn func(b []byte) ([]byte, error)
}

func (d *Decompressor) Decompress(b []byte) ([]byte, error) {
	return d.DecompressFn(b)
}

var _ hellodict.Loader = (*Loader)(nil)

// Loader is a mock implementation of hellodict.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, src hellodict.Source) (*hellodict.Corpus, error)
}

func (l *Loader) Load(ctx context.Context, src hellodict.Source) (*hellodict.Corpus, error) {
	return l.LoadFn(ctx, src)
}
