//go:build nozstd

package codecs

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Builds without cgo use the pure Go implementation.
func init() {
	zstdNewReader = func(r io.Reader) (io.ReadCloser, error) {
		var d, err = zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	zstdNewWriter = func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	}
}
