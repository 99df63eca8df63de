// Package zstd implements hellodict.Decompressor with Zstandard.
package zstd

import (
	"github.com/fwojciec/hellodict"
	"github.com/klauspost/compress/zstd"
)

// MaxDecodedSize bounds the decompressed corpus size.
const MaxDecodedSize = 1 << 30

// Ensure Decompressor implements hellodict.Decompressor at compile time.
var _ hellodict.Decompressor = (*Decompressor)(nil)

// Decompressor decodes Zstandard frames. It is safe for concurrent use.
type Decompressor struct {
	dec *zstd.Decoder
}

// NewDecompressor creates a Decompressor. Call Close to release the decoder.
func NewDecompressor() (*Decompressor, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, err
	}
	return &Decompressor{dec: dec}, nil
}

// Decompress decodes all frames in b.
func (d *Decompressor) Decompress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, hellodict.Errorf(hellodict.EINVALID, "empty corpus")
	}
	out, err := d.dec.DecodeAll(b, nil)
	if err != nil {
		return nil, hellodict.Errorf(hellodict.EINVALID, "decompress corpus: %v", err)
	}
	return out, nil
}

// Close releases the decoder's goroutines.
func (d *Decompressor) Close() error {
	d.dec.Close()
	return nil
}

// Compress encodes b as a single Zstandard frame. It is used to build
// corpus fixtures.
func Compress(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil), nil
}
