package pipeline

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/wire"
)

// MaxFrameLength is the largest frame length which fits a three-byte VarInt prefix.
const MaxFrameLength = 1<<21 - 1

// ErrFrameTooLarge is returned when a frame's length prefix exceeds MaxFrameLength.
var ErrFrameTooLarge = errors.New("frame too large")

// Splitter is a Decoder which strips the VarInt length prefix of a frame,
// verifying the frame holds exactly the declared length.
type Splitter struct{}

// Decode implements Decoder.
func (Splitter) Decode(_ *Context, in *wire.Buffer) (*wire.Buffer, error) {
	var n, err = in.ReadVarInt()
	if err != nil {
		in.Release()
		return nil, errors.WithMessage(err, "reading frame length")
	} else if n < 0 || n > MaxFrameLength {
		in.Release()
		return nil, errors.WithMessagef(ErrFrameTooLarge, "length %d", n)
	} else if rem := in.ReadableBytes(); int(n) != rem {
		in.Release()
		return nil, errors.Errorf("frame declares %d bytes but holds %d", n, rem)
	}
	return in, nil
}

// Prepender is an Encoder which prefixes a frame with its VarInt length.
type Prepender struct{}

// Encode implements Encoder.
func (Prepender) Encode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error) {
	defer in.Release()

	var n = in.ReadableBytes()
	if n > MaxFrameLength {
		return nil, errors.WithMessagef(ErrFrameTooLarge, "length %d", n)
	}
	var out = ctx.Allocator().Allocate(wire.VarIntSize(int32(n)) + n)
	out.WriteVarInt(int32(n))
	out.WriteBytes(in.Readable())
	return out, nil
}

// AddFraming adds a Splitter and Prepender at the head of the Chain.
func AddFraming(c *Chain) error {
	if err := c.AddFirst(SplitterName, Splitter{}); err != nil {
		return err
	}
	return c.AddAfter(SplitterName, PrependerName, Prepender{})
}

// FrameReader reads whole length-prefixed frames from a stream.
type FrameReader struct {
	br    *bufio.Reader
	alloc wire.Allocator
}

// NewFrameReader returns a FrameReader of |r| which allocates from |alloc|.
func NewFrameReader(r io.Reader, alloc wire.Allocator) *FrameReader {
	var br, ok = r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &FrameReader{br: br, alloc: alloc}
}

// Next returns a Buffer holding the next frame, including its length prefix.
// It returns io.EOF if the stream ends cleanly between frames, and
// io.ErrUnexpectedEOF if it ends mid-frame.
func (fr *FrameReader) Next() (*wire.Buffer, error) {
	var prefix [3]byte
	var n int32

	for i := 0; ; i++ {
		if i == len(prefix) {
			return nil, errors.WithMessage(ErrFrameTooLarge, "length prefix exceeds three bytes")
		}
		var c, err = fr.br.ReadByte()
		if err == io.EOF && i != 0 {
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, err
		}
		prefix[i] = c
		n |= int32(c&0x7f) << (7 * i)

		if c&0x80 == 0 {
			var out = fr.alloc.Allocate(i + 1 + int(n))
			out.WriteBytes(prefix[:i+1])
			out.SetWriterIndex(i + 1 + int(n))

			if _, err = io.ReadFull(fr.br, out.Bytes()[i+1:]); err != nil {
				out.Release()
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			return out, nil
		}
	}
}
