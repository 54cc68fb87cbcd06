package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// NBT is a named binary tag tree, held as its encoded bytes (root tag type,
// root name, and payload). The empty NBT encodes as a lone TAG_End.
type NBT struct {
	Raw []byte
}

// MaxNBTDepth bounds the nesting of compound and list tags.
const MaxNBTDepth = 512

// NBT tag types.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// IsEmpty returns whether the NBT has no root tag.
func (n NBT) IsEmpty() bool { return len(n.Raw) == 0 || n.Raw[0] == TagEnd }

// RootType returns the tag type of the root, or TagEnd if empty.
func (n NBT) RootType() byte {
	if n.IsEmpty() {
		return TagEnd
	}
	return n.Raw[0]
}

// ReadNBT reads a plain NBT tree.
func (b *Buffer) ReadNBT() (NBT, error) {
	var start = b.r
	if err := skipNamedTag(b); err != nil {
		return NBT{}, err
	}
	if b.b[start] == TagEnd {
		return NBT{}, nil
	}
	return NBT{Raw: append([]byte(nil), b.b[start:b.r]...)}, nil
}

// WriteNBT writes a plain NBT tree.
func (b *Buffer) WriteNBT(n NBT) {
	if n.IsEmpty() {
		b.b = append(b.b, TagEnd)
	} else {
		b.b = append(b.b, n.Raw...)
	}
}

// ReadGzippedNBT reads a short length-prefixed, gzip-compressed NBT tree.
// A length of -1 denotes the empty NBT.
func (b *Buffer) ReadGzippedNBT() (NBT, error) {
	var n, err = b.ReadInt16()
	if err != nil {
		return NBT{}, err
	} else if n < 0 {
		return NBT{}, nil
	}
	p, err := b.next(int(n))
	if err != nil {
		return NBT{}, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(p))
	if err != nil {
		return NBT{}, errors.WithMessage(err, "gzip.NewReader")
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return NBT{}, errors.WithMessage(err, "inflating NBT")
	}
	var out NBT
	if out, err = NewBuffer(raw).ReadNBT(); err != nil {
		return NBT{}, err
	}
	return out, nil
}

// WriteGzippedNBT writes a short length-prefixed, gzip-compressed NBT tree.
func (b *Buffer) WriteGzippedNBT(n NBT) error {
	if n.IsEmpty() {
		b.WriteInt16(-1)
		return nil
	}
	var zb bytes.Buffer
	var zw = gzip.NewWriter(&zb)

	if _, err := zw.Write(n.Raw); err != nil {
		return errors.WithMessage(err, "deflating NBT")
	} else if err = zw.Close(); err != nil {
		return errors.WithMessage(err, "deflating NBT")
	} else if zb.Len() > 1<<15-1 {
		return errors.Errorf("gzipped NBT too large (%d bytes)", zb.Len())
	}
	b.WriteInt16(int16(zb.Len()))
	b.b = append(b.b, zb.Bytes()...)
	return nil
}

func skipNamedTag(b *Buffer) error {
	var typ, err = b.ReadByte()
	if err != nil || typ == TagEnd {
		return err
	} else if err = skipNBTString(b); err != nil {
		return err
	}
	return skipNBTPayload(b, typ, 0)
}

func skipNBTString(b *Buffer) error {
	var n, err = b.ReadUint16()
	if err != nil {
		return err
	}
	return b.Skip(int(n))
}

func skipNBTPayload(b *Buffer, typ byte, depth int) error {
	if depth > MaxNBTDepth {
		return ErrNBTDepth
	}
	switch typ {
	case TagByte:
		return b.Skip(1)
	case TagShort:
		return b.Skip(2)
	case TagInt, TagFloat:
		return b.Skip(4)
	case TagLong, TagDouble:
		return b.Skip(8)
	case TagByteArray:
		return skipNBTArray(b, 1)
	case TagIntArray:
		return skipNBTArray(b, 4)
	case TagLongArray:
		return skipNBTArray(b, 8)
	case TagString:
		return skipNBTString(b)
	case TagList:
		var elem, err = b.ReadByte()
		if err != nil {
			return err
		}
		n, err := b.ReadInt32()
		if err != nil {
			return err
		}
		for i := int32(0); i < n; i++ {
			if err = skipNBTPayload(b, elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	case TagCompound:
		for {
			var child, err = b.ReadByte()
			if err != nil {
				return err
			} else if child == TagEnd {
				return nil
			} else if err = skipNBTString(b); err != nil {
				return err
			} else if err = skipNBTPayload(b, child, depth+1); err != nil {
				return err
			}
		}
	}
	return errors.WithMessagef(ErrUnknownNBTTag, "type %d", typ)
}

func skipNBTArray(b *Buffer, width int) error {
	var n, err = b.ReadInt32()
	if err != nil {
		return err
	} else if n < 0 {
		return ErrNegativeLength
	}
	return b.Skip(int(n) * width)
}

// NBTBuilder composes an NBT tree with a compound root.
type NBTBuilder struct {
	buf []byte
}

// NewNBTBuilder begins a compound root tag named |name|.
func NewNBTBuilder(name string) *NBTBuilder {
	var nb = &NBTBuilder{buf: []byte{TagCompound}}
	nb.name(name)
	return nb
}

func (nb *NBTBuilder) name(s string) {
	nb.buf = binary.BigEndian.AppendUint16(nb.buf, uint16(len(s)))
	nb.buf = append(nb.buf, s...)
}

// Int adds an int tag.
func (nb *NBTBuilder) Int(name string, v int32) *NBTBuilder {
	nb.buf = append(nb.buf, TagInt)
	nb.name(name)
	nb.buf = binary.BigEndian.AppendUint32(nb.buf, uint32(v))
	return nb
}

// String adds a string tag.
func (nb *NBTBuilder) String(name, v string) *NBTBuilder {
	nb.buf = append(nb.buf, TagString)
	nb.name(name)
	nb.name(v)
	return nb
}

// Begin opens a nested compound tag, closed by End.
func (nb *NBTBuilder) Begin(name string) *NBTBuilder {
	nb.buf = append(nb.buf, TagCompound)
	nb.name(name)
	return nb
}

// End closes the innermost open compound.
func (nb *NBTBuilder) End() *NBTBuilder {
	nb.buf = append(nb.buf, TagEnd)
	return nb
}

// Build closes the root compound and returns the NBT.
func (nb *NBTBuilder) Build() NBT {
	return NBT{Raw: append(nb.buf, TagEnd)}
}
