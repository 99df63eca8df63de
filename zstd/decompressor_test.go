package zstd_test

import (
	"testing"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressor_Decompress(t *testing.T) {
	t.Parallel()

	d, err := zstd.NewDecompressor()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	t.Run("round trips compressed corpus bytes", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`{"Word":["<p>A unit of language.</p>"]}`)
		compressed, err := zstd.Compress(raw)
		require.NoError(t, err)

		got, err := d.Decompress(compressed)

		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("rejects bytes that are not zstandard", func(t *testing.T) {
		t.Parallel()

		_, err := d.Decompress([]byte(`{"Word":[]}`))

		require.Error(t, err)
		assert.Equal(t, hellodict.EINVALID, hellodict.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := d.Decompress(nil)

		assert.Equal(t, hellodict.EINVALID, hellodict.ErrorCode(err))
	})
}
