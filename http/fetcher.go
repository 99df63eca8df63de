// Package http provides an HTTP-based implementation of hellodict.Fetcher
// that verifies subresource integrity before returning corpus bytes.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/hellodict"
)

// DefaultFetchTimeout is the default timeout for corpus downloads.
const DefaultFetchTimeout = 60 * time.Second

// MaxCorpusSize bounds the number of bytes read from a response body.
const MaxCorpusSize = 256 << 20

// Ensure Fetcher implements hellodict.Fetcher at compile time.
var _ hellodict.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves corpus bytes over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	delays  []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client used for requests. The client's own
// timeout takes precedence over WithTimeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch downloads src.URL and verifies the body against src.Integrity when
// one is set. Sources that fail validation are rejected before any request.
// Transient failures are retried per WithRetryDelays.
func (f *Fetcher) Fetch(ctx context.Context, src hellodict.Source) ([]byte, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	return fetchWithRetry(ctx, src, f.fetch, f.delays)
}

func (f *Fetcher) fetch(ctx context.Context, src hellodict.Source) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, hellodict.Errorf(hellodict.EINVALID, "invalid corpus URL: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, hellodict.Errorf(hellodict.EUNAVAILABLE, "fetch %s: %v", src.URL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, hellodict.Errorf(hellodict.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, src.URL)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, hellodict.Errorf(hellodict.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, src.URL)
	default:
		return nil, hellodict.Errorf(hellodict.EINVALID, "HTTP %d for %s", resp.StatusCode, src.URL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxCorpusSize+1))
	if err != nil {
		return nil, hellodict.Errorf(hellodict.EUNAVAILABLE, "read %s: %v", src.URL, err)
	}
	if len(body) > MaxCorpusSize {
		return nil, hellodict.Errorf(hellodict.EINVALID, "corpus at %s exceeds %d bytes", src.URL, MaxCorpusSize)
	}

	if strings.TrimSpace(src.Integrity) != "" {
		if err := hellodict.VerifyIntegrity(body, src.Integrity); err != nil {
			return nil, err
		}
	}

	return body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
