package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/mock"
	hdslog "github.com/fwojciec/hellodict/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDictionary(t *testing.T) {
	t.Parallel()

	newInner := func() *mock.Dictionary {
		return &mock.Dictionary{
			FindWordFn: func(ctx context.Context, word string) ([]string, error) {
				return []string{"<p>one</p>", "<p>two</p>"}, nil
			},
			PatternMatchFn: func(ctx context.Context, pattern string) ([]string, error) {
				return nil, hellodict.ErrUnavailable
			},
			StateFn: func() hellodict.State {
				return hellodict.StateLoaded
			},
		}
	}

	t.Run("logs word queries with result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		d := hdslog.NewLoggingDictionary(newInner(), slog.New(slog.NewTextHandler(&buf, nil)))

		entries, err := d.FindWord(context.Background(), "word")

		require.NoError(t, err)
		assert.Len(t, entries, 2)
		output := buf.String()
		assert.Contains(t, output, "find word")
		assert.Contains(t, output, "query=word")
		assert.Contains(t, output, "results=2")
		assert.Contains(t, output, "state=loaded")
	})

	t.Run("logs failed pattern queries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		d := hdslog.NewLoggingDictionary(newInner(), slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := d.PatternMatch(context.Background(), "w?rd")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "pattern match")
		assert.Contains(t, output, "query=w?rd")
		assert.Contains(t, output, "err=")
	})

	t.Run("delegates state", func(t *testing.T) {
		t.Parallel()

		d := hdslog.NewLoggingDictionary(newInner(), slog.New(slog.DiscardHandler))

		assert.Equal(t, hellodict.StateLoaded, d.State())
	})
}
