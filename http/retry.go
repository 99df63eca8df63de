package http

import (
	"context"
	"time"

	"github.com/fwojciec/hellodict"
)

// fetchFunc is the signature of a single fetch attempt.
type fetchFunc func(ctx context.Context, src hellodict.Source) ([]byte, error)

// DefaultRetryDelays returns the backoff delays for download retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetryDelays retries transient failures once per delay, waiting the
// delay before each retry. By default a failed download is not retried.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// fetchWithRetry calls fetch until it succeeds, fails permanently or the
// delays run out. Only EUNAVAILABLE failures are retried; integrity and
// client errors are returned at once.
func fetchWithRetry(ctx context.Context, src hellodict.Source, fetch fetchFunc, delays []time.Duration) ([]byte, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		b, err := fetch(ctx, src)
		if err == nil {
			return b, nil
		}
		lastErr = err

		if hellodict.ErrorCode(err) != hellodict.EUNAVAILABLE || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
