package wire

import (
	"fmt"

	"go.packetlens.dev/core/protocol"
)

// IntEncoding is the wire shape of an int32 field.
type IntEncoding uint8

const (
	// FixedInt encodes as a four-byte big-endian int.
	FixedInt IntEncoding = iota
	// VarIntEncoding encodes as a VarInt.
	VarIntEncoding
)

func (e IntEncoding) String() string {
	switch e {
	case FixedInt:
		return "FixedInt"
	case VarIntEncoding:
		return "VarInt"
	}
	return fmt.Sprintf("IntEncoding(%d)", uint8(e))
}

// IntCodec returns the Codec of IntEncoding |e|.
func IntCodec(e IntEncoding) Codec[int32] {
	switch e {
	case FixedInt:
		return Codec[int32]{
			Read:  (*Buffer).ReadInt32,
			Write: func(b *Buffer, v int32) error { b.WriteInt32(v); return nil },
		}
	case VarIntEncoding:
		return VarIntCodec
	}
	panic(fmt.Sprintf("invalid IntEncoding %d", e))
}

// PositionEncoding is the wire shape of a block position.
type PositionEncoding uint8

const (
	// ThreeInts encodes X, Y, and Z as consecutive big-endian ints.
	ThreeInts PositionEncoding = iota
	// PackedXYZ packs into a long as X (26 bits), Y (12 bits), Z (26 bits).
	PackedXYZ
	// PackedXZY packs into a long as X (26 bits), Z (26 bits), Y (12 bits).
	PackedXZY
)

func (e PositionEncoding) String() string {
	switch e {
	case ThreeInts:
		return "ThreeInts"
	case PackedXYZ:
		return "PackedXYZ"
	case PackedXZY:
		return "PackedXZY"
	}
	return fmt.Sprintf("PositionEncoding(%d)", uint8(e))
}

// PackedPositionFor returns the packed PositionEncoding used by |v|.
func PackedPositionFor(v protocol.Version) PositionEncoding {
	if v.NewerThanOrEquals(protocol.V1_14) {
		return PackedXZY
	}
	return PackedXYZ
}

// PositionCodec returns the Codec of PositionEncoding |e|.
func PositionCodec(e PositionEncoding) Codec[Vector3i] {
	switch e {
	case ThreeInts:
		return Codec[Vector3i]{
			Read: func(b *Buffer) (Vector3i, error) {
				var v Vector3i
				var err error
				if v.X, err = b.ReadInt32(); err != nil {
					return v, err
				} else if v.Y, err = b.ReadInt32(); err != nil {
					return v, err
				}
				v.Z, err = b.ReadInt32()
				return v, err
			},
			Write: func(b *Buffer, v Vector3i) error {
				b.WriteInt32(v.X)
				b.WriteInt32(v.Y)
				b.WriteInt32(v.Z)
				return nil
			},
		}
	case PackedXYZ, PackedXZY:
		return Codec[Vector3i]{
			Read: func(b *Buffer) (Vector3i, error) {
				var l, err = b.ReadInt64()
				return UnpackPosition(e, l), err
			},
			Write: func(b *Buffer, v Vector3i) error {
				b.WriteInt64(PackPosition(e, v))
				return nil
			},
		}
	}
	panic(fmt.Sprintf("invalid PositionEncoding %d", e))
}

// PackPosition packs |v| into a long under packed encoding |e|.
func PackPosition(e PositionEncoding, v Vector3i) int64 {
	var x, y, z = int64(v.X) & 0x3ffffff, int64(v.Y) & 0xfff, int64(v.Z) & 0x3ffffff
	if e == PackedXZY {
		return x<<38 | z<<12 | y
	}
	return x<<38 | y<<26 | z
}

// UnpackPosition unpacks a long under packed encoding |e|. Each component
// is sign-extended.
func UnpackPosition(e PositionEncoding, l int64) Vector3i {
	if e == PackedXZY {
		return Vector3i{
			X: int32(l >> 38),
			Y: int32(l << 52 >> 52),
			Z: int32(l << 26 >> 38),
		}
	}
	return Vector3i{
		X: int32(l >> 38),
		Y: int32(l << 26 >> 52),
		Z: int32(l << 38 >> 38),
	}
}

// NBTEncoding is the wire shape of an NBT tag tree.
type NBTEncoding uint8

const (
	// PlainNBT writes the tag tree directly, with a TAG_End byte for absence.
	PlainNBT NBTEncoding = iota
	// GzippedNBT writes a short length (-1 for absence) followed by the
	// gzip-compressed tag tree.
	GzippedNBT
)

func (e NBTEncoding) String() string {
	switch e {
	case PlainNBT:
		return "PlainNBT"
	case GzippedNBT:
		return "GzippedNBT"
	}
	return fmt.Sprintf("NBTEncoding(%d)", uint8(e))
}

// NBTEncodingFor returns the NBTEncoding used by |v|.
func NBTEncodingFor(v protocol.Version) NBTEncoding {
	if v.OlderThan(protocol.V1_8) {
		return GzippedNBT
	}
	return PlainNBT
}

// NBTCodec returns the Codec of NBTEncoding |e|.
func NBTCodec(e NBTEncoding) Codec[NBT] {
	switch e {
	case PlainNBT:
		return Codec[NBT]{
			Read:  (*Buffer).ReadNBT,
			Write: func(b *Buffer, n NBT) error { b.WriteNBT(n); return nil },
		}
	case GzippedNBT:
		return Codec[NBT]{
			Read:  (*Buffer).ReadGzippedNBT,
			Write: (*Buffer).WriteGzippedNBT,
		}
	}
	panic(fmt.Sprintf("invalid NBTEncoding %d", e))
}
