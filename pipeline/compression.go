package pipeline

import (
	"io"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/codecs"
	"go.packetlens.dev/core/wire"
)

// MaxUncompressedLength bounds the declared uncompressed length of a packet.
const MaxUncompressedLength = 1 << 23

// Compression configures the compress and decompress Stages.
type Compression struct {
	// Packets of at least Threshold bytes are compressed. Smaller packets
	// are stored with a zero length marker.
	Threshold int
	Codec     codecs.Codec
}

// Compressor is an Encoder which compresses packets. An encoded packet is
// a VarInt of its uncompressed length (or zero, if stored uncompressed)
// followed by its payload.
type Compressor struct{ Compression }

// Decompressor is a Decoder which reverses Compressor.
type Decompressor struct{ Compression }

// Encode implements Encoder.
func (c *Compressor) Encode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error) {
	defer in.Release()

	var n = in.ReadableBytes()
	if n < c.Threshold {
		var out = ctx.Allocator().Allocate(1 + n)
		out.WriteVarInt(0)
		out.WriteBytes(in.Readable())
		return out, nil
	} else if n > MaxUncompressedLength {
		return nil, errors.Errorf("packet of %d bytes exceeds %d", n, MaxUncompressedLength)
	}

	var out = ctx.Allocator().Allocate(wire.VarIntSize(int32(n)) + n/2)
	out.WriteVarInt(int32(n))

	var w, err = codecs.NewCodecWriter(out, c.Codec)
	if err == nil {
		if _, err = w.Write(in.Readable()); err == nil {
			err = w.Close()
		}
	}
	if err != nil {
		out.Release()
		return nil, errors.WithMessagef(err, "compressing with %s", c.Codec)
	}
	return out, nil
}

// Decode implements Decoder.
func (d *Decompressor) Decode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error) {
	defer in.Release()

	var n, err = in.ReadVarInt()
	if err != nil {
		return nil, errors.WithMessage(err, "reading uncompressed length")
	} else if n == 0 {
		return wire.Copy(ctx.Allocator(), in), nil
	} else if int(n) < d.Threshold {
		return nil, errors.Errorf("compressed packet of %d bytes is below threshold %d", n, d.Threshold)
	} else if n < 0 || n > MaxUncompressedLength {
		return nil, errors.Errorf("uncompressed length %d is out of range", n)
	}

	r, err := codecs.NewCodecReader(in, d.Codec)
	if err != nil {
		return nil, errors.WithMessagef(err, "decompressing with %s", d.Codec)
	}
	defer r.Close()

	var out = ctx.Allocator().Allocate(int(n))
	out.SetWriterIndex(int(n))

	if _, err = io.ReadFull(r, out.Bytes()); err != nil {
		out.Release()
		return nil, errors.WithMessagef(err, "decompressing %d bytes with %s", n, d.Codec)
	}
	var extra [1]byte
	if _, err = io.ReadFull(r, extra[:]); err != io.EOF {
		out.Release()
		return nil, errors.Errorf("packet exceeds declared length %d", n)
	}
	return out, nil
}

// AddCompression adds decompress and compress Stages immediately tail-ward
// of the framing Stages.
func AddCompression(c *Chain, cfg Compression) error {
	if err := c.AddAfter(PrependerName, DecompressName, &Decompressor{cfg}); err != nil {
		return err
	}
	return c.AddAfter(DecompressName, CompressName, &Compressor{cfg})
}

// AppendCompression adds decompress and compress Stages at the tail of the
// Chain. This models a host which enables compression after other Stages
// were installed.
func AppendCompression(c *Chain, cfg Compression) error {
	if err := c.AddLast(DecompressName, &Decompressor{cfg}); err != nil {
		return err
	}
	return c.AddLast(CompressName, &Compressor{cfg})
}
