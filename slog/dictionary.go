package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hellodict"
)

// Ensure LoggingDictionary implements hellodict.Dictionary.
var _ hellodict.Dictionary = (*LoggingDictionary)(nil)

// LoggingDictionary wraps a Dictionary with debug logging of every query.
type LoggingDictionary struct {
	next   hellodict.Dictionary
	logger *slog.Logger
}

// NewLoggingDictionary creates a new LoggingDictionary.
func NewLoggingDictionary(next hellodict.Dictionary, logger *slog.Logger) *LoggingDictionary {
	return &LoggingDictionary{next: next, logger: logger}
}

// FindWord delegates to the wrapped dictionary and logs the query.
func (d *LoggingDictionary) FindWord(ctx context.Context, word string) (entries []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("find word",
			"query", word,
			"results", len(entries),
			"state", d.next.State().String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.FindWord(ctx, word)
}

// PatternMatch delegates to the wrapped dictionary and logs the query.
func (d *LoggingDictionary) PatternMatch(ctx context.Context, pattern string) (words []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("pattern match",
			"query", pattern,
			"results", len(words),
			"state", d.next.State().String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.PatternMatch(ctx, pattern)
}

// State delegates to the wrapped dictionary.
func (d *LoggingDictionary) State() hellodict.State {
	return d.next.State()
}
