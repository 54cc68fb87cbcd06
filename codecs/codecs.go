package codecs

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"go.packetlens.dev/core/protocol"
)

// Codec is a compression codec of packet payloads.
type Codec int

const (
	// ZLIB is the codec spoken by game clients and servers.
	ZLIB Codec = iota
	GZIP
	SNAPPY
	ZSTANDARD
)

var codecNames = []string{"ZLIB", "GZIP", "SNAPPY", "ZSTANDARD"}

func (c Codec) String() string {
	if c >= 0 && int(c) < len(codecNames) {
		return codecNames[c]
	}
	return fmt.Sprintf("Codec(%d)", int(c))
}

// Validate returns an error if the Codec is not known.
func (c Codec) Validate() error {
	if c < 0 || int(c) >= len(codecNames) {
		return protocol.NewValidationError("invalid codec (%d)", int(c))
	}
	return nil
}

// UnmarshalFlag implements flags.Unmarshaler.
func (c *Codec) UnmarshalFlag(value string) error {
	for i, name := range codecNames {
		if strings.EqualFold(name, value) {
			*c = Codec(i)
			return nil
		}
	}
	return protocol.NewValidationError("invalid codec (%s; expected one of %s)",
		value, strings.Join(codecNames, ", "))
}

// MarshalFlag implements flags.Marshaler.
func (c Codec) MarshalFlag() (string, error) { return c.String(), nil }

// Decompressor is a ReadCloser where Close closes and releases Decompressor
// state, but does not Close or affect the underlying Reader.
type Decompressor io.ReadCloser

// Compressor is a WriteCloser where Close closes and releases Compressor
// state, potentially flushing final content to the underlying Writer,
// but does not Close or otherwise affect the underlying Writer.
type Compressor io.WriteCloser

// NewCodecReader returns a Decompressor of the Reader encoded with Codec.
func NewCodecReader(r io.Reader, codec Codec) (Decompressor, error) {
	switch codec {
	case ZLIB:
		return zlib.NewReader(r)
	case GZIP:
		return gzip.NewReader(r)
	case SNAPPY:
		return io.NopCloser(snappy.NewReader(r)), nil
	case ZSTANDARD:
		return zstdNewReader(r)
	default:
		return nil, fmt.Errorf("unsupported codec %s", codec)
	}
}

// NewCodecWriter returns a Compressor wrapping the Writer encoding with Codec.
func NewCodecWriter(w io.Writer, codec Codec) (Compressor, error) {
	switch codec {
	case ZLIB:
		return zlib.NewWriter(w), nil
	case GZIP:
		return gzip.NewWriter(w), nil
	case SNAPPY:
		return snappy.NewBufferedWriter(w), nil
	case ZSTANDARD:
		return zstdNewWriter(w)
	default:
		return nil, fmt.Errorf("unsupported codec %s", codec)
	}
}

var (
	zstdNewReader = func(io.Reader) (io.ReadCloser, error) {
		return nil, fmt.Errorf("ZSTANDARD was not enabled at compile time")
	}
	zstdNewWriter = func(io.Writer) (io.WriteCloser, error) {
		return nil, fmt.Errorf("ZSTANDARD was not enabled at compile time")
	}
)
