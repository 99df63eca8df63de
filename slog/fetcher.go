package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hellodict"
)

// Ensure LoggingFetcher implements hellodict.Fetcher.
var _ hellodict.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   hellodict.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next hellodict.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, src hellodict.Source) (b []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", src.URL,
			"integrity", src.Integrity != "",
			"bytes", len(b),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, src)
}

// Ensure LoggingLoader implements hellodict.Loader.
var _ hellodict.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   hellodict.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next hellodict.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, src hellodict.Source) (c *hellodict.Corpus, err error) {
	defer func(begin time.Time) {
		var fingerprint uint64
		if c != nil {
			fingerprint = c.Fingerprint
		}
		l.logger.Info("corpus load",
			"url", src.URL,
			"headwords", c.Len(),
			"fingerprint", fingerprint,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, src)
}
