package html2text_test

import (
	"testing"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/html2text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("strips tags and keeps text", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p><span class="hw">Word</span> <span class="pos">n.</span></p>`)

		require.NoError(t, err)
		assert.Equal(t, "Word n.", text)
	})

	t.Run("keeps link text instead of targets", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p>See <a class="er" href="#/word/Ward">Ward</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "See Ward.")
		assert.NotContains(t, text, "#/word/")
	})

	t.Run("puts paragraphs on separate lines", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p>One.</p><p>Two.</p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "One.")
		assert.Contains(t, text, "\n")
		assert.Contains(t, text, "Two.")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := html2text.NewConverter().Convert("")

		assert.Equal(t, hellodict.EINVALID, hellodict.ErrorCode(err))
	})
}
