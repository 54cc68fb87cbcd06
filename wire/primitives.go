package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxStringLength is the default maximum length, in characters, of strings.
const MaxStringLength = 32767

// ReadBool reads a single byte boolean.
func (b *Buffer) ReadBool() (bool, error) {
	var c, err = b.ReadByte()
	return c != 0, err
}

// WriteBool writes a single byte boolean.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.b = append(b.b, 1)
	} else {
		b.b = append(b.b, 0)
	}
}

// ReadInt8 reads a signed byte.
func (b *Buffer) ReadInt8() (int8, error) {
	var c, err = b.ReadByte()
	return int8(c), err
}

// WriteInt8 writes a signed byte.
func (b *Buffer) WriteInt8(v int8) { b.b = append(b.b, byte(v)) }

// ReadUint8 reads an unsigned byte.
func (b *Buffer) ReadUint8() (uint8, error) { return b.ReadByte() }

// WriteUint8 writes an unsigned byte.
func (b *Buffer) WriteUint8(v uint8) { b.b = append(b.b, v) }

// ReadInt16 reads a big-endian short.
func (b *Buffer) ReadInt16() (int16, error) {
	var p, err = b.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

// WriteInt16 writes a big-endian short.
func (b *Buffer) WriteInt16(v int16) { b.b = binary.BigEndian.AppendUint16(b.b, uint16(v)) }

// ReadUint16 reads a big-endian unsigned short.
func (b *Buffer) ReadUint16() (uint16, error) {
	var v, err = b.ReadInt16()
	return uint16(v), err
}

// WriteUint16 writes a big-endian unsigned short.
func (b *Buffer) WriteUint16(v uint16) { b.b = binary.BigEndian.AppendUint16(b.b, v) }

// ReadInt32 reads a big-endian int.
func (b *Buffer) ReadInt32() (int32, error) {
	var p, err = b.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

// WriteInt32 writes a big-endian int.
func (b *Buffer) WriteInt32(v int32) { b.b = binary.BigEndian.AppendUint32(b.b, uint32(v)) }

// ReadInt64 reads a big-endian long.
func (b *Buffer) ReadInt64() (int64, error) {
	var p, err = b.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

// WriteInt64 writes a big-endian long.
func (b *Buffer) WriteInt64(v int64) { b.b = binary.BigEndian.AppendUint64(b.b, uint64(v)) }

// ReadFloat32 reads a big-endian IEEE 754 float.
func (b *Buffer) ReadFloat32() (float32, error) {
	var v, err = b.ReadInt32()
	return math.Float32frombits(uint32(v)), err
}

// WriteFloat32 writes a big-endian IEEE 754 float.
func (b *Buffer) WriteFloat32(v float32) { b.WriteInt32(int32(math.Float32bits(v))) }

// ReadFloat64 reads a big-endian IEEE 754 double.
func (b *Buffer) ReadFloat64() (float64, error) {
	var v, err = b.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

// WriteFloat64 writes a big-endian IEEE 754 double.
func (b *Buffer) WriteFloat64(v float64) { b.WriteInt64(int64(math.Float64bits(v))) }

// ReadVarInt reads a VarInt: an int32 encoded as up to five groups of seven
// bits, least significant group first, with the high bit of each byte set
// if another byte follows.
func (b *Buffer) ReadVarInt() (int32, error) {
	var v uint32
	for i := 0; i != 5; i++ {
		var c, err = b.ReadByte()
		if err != nil {
			return 0, err
		}
		// The fifth group carries only the top four bits.
		if i == 4 && c&0xf0 != 0 {
			return 0, ErrVarIntTooBig
		}
		v |= uint32(c&0x7f) << (7 * i)

		if c&0x80 == 0 {
			return int32(v), nil
		}
	}
	return 0, ErrVarIntTooBig
}

// WriteVarInt writes a VarInt.
func (b *Buffer) WriteVarInt(v int32) { b.b = AppendVarInt(b.b, v) }

// AppendVarInt appends the VarInt encoding of |v| to |p|.
func AppendVarInt(p []byte, v int32) []byte {
	var u = uint32(v)
	for u >= 0x80 {
		p = append(p, byte(u)|0x80)
		u >>= 7
	}
	return append(p, byte(u))
}

// VarIntSize returns the encoded length of |v|.
func VarIntSize(v int32) int {
	var u, n = uint32(v), 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

// ReadVarLong reads a VarLong: an int64 of up to ten seven-bit groups.
func (b *Buffer) ReadVarLong() (int64, error) {
	var v uint64
	for i := 0; i != 10; i++ {
		var c, err = b.ReadByte()
		if err != nil {
			return 0, err
		}
		if i == 9 && c&0xfe != 0 {
			return 0, ErrVarIntTooBig
		}
		v |= uint64(c&0x7f) << (7 * i)

		if c&0x80 == 0 {
			return int64(v), nil
		}
	}
	return 0, ErrVarIntTooBig
}

// WriteVarLong writes a VarLong.
func (b *Buffer) WriteVarLong(v int64) {
	var u = uint64(v)
	for u >= 0x80 {
		b.b = append(b.b, byte(u)|0x80)
		u >>= 7
	}
	b.b = append(b.b, byte(u))
}

// ReadString reads a VarInt length-prefixed UTF-8 string of at most
// |maxLen| characters.
func (b *Buffer) ReadString(maxLen int) (string, error) {
	var n, err = b.ReadVarInt()
	if err != nil {
		return "", err
	} else if n < 0 {
		return "", ErrNegativeLength
	} else if int(n) > maxLen*4 {
		return "", ErrStringTooLong
	}
	p, err := b.next(int(n))
	if err != nil {
		return "", err
	} else if utf8.RuneCount(p) > maxLen {
		return "", ErrStringTooLong
	}
	return string(p), nil
}

// WriteString writes a VarInt length-prefixed UTF-8 string.
func (b *Buffer) WriteString(s string) {
	b.WriteVarInt(int32(len(s)))
	b.b = append(b.b, s...)
}

// ReadByteArray reads a VarInt length-prefixed byte array.
func (b *Buffer) ReadByteArray() ([]byte, error) {
	var n, err = b.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return b.ReadBytes(int(n))
}

// WriteByteArray writes a VarInt length-prefixed byte array.
func (b *Buffer) WriteByteArray(p []byte) {
	b.WriteVarInt(int32(len(p)))
	b.b = append(b.b, p...)
}

// ReadUUID reads a UUID as two big-endian longs, most significant first.
func (b *Buffer) ReadUUID() (uuid.UUID, error) {
	var p, err = b.next(16)
	if err != nil {
		return uuid.Nil, err
	}
	var out uuid.UUID
	copy(out[:], p)
	return out, nil
}

// WriteUUID writes a UUID as two big-endian longs, most significant first.
func (b *Buffer) WriteUUID(id uuid.UUID) { b.b = append(b.b, id[:]...) }
