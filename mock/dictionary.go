package mock

import (
	"context"

	"github.com/fwojciec/hellodict"
)

var _ hellodict.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of hellodict.Dictionary.
type Dictionary struct {
	FindWordFn     func(ctx context.Context, word string) ([]string, error)
	PatternMatchFn func(ctx context.Context, pattern string) ([]string, error)
	StateFn        func() hellodict.State
}

func (d *Dictionary) FindWord(ctx context.Context, word string) ([]string, error) {
	return d.FindWordFn(ctx, word)
}

func (d *Dictionary) PatternMatch(ctx context.Context, pattern string) ([]string, error) {
	return d.PatternMatchFn(ctx, pattern)
}

func (d *Dictionary) State() hellodict.State {
	return d.StateFn()
}

var _ hellodict.Converter = (*Converter)(nil)

// Converter is a mock implementation of hellodict.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
