package wire

import (
	"fmt"

	"github.com/google/uuid"
)

// Codec pairs a deserializer and serializer of values of type T.
type Codec[T any] struct {
	Read  func(*Buffer) (T, error)
	Write func(*Buffer, T) error
}

// MapCodec adapts Codec |c| of A into a Codec of B, using |decode| and
// |encode| to convert between the two.
func MapCodec[A, B any](c Codec[A], decode func(A) (B, error), encode func(B) A) Codec[B] {
	return Codec[B]{
		Read: func(b *Buffer) (B, error) {
			var a, err = c.Read(b)
			if err != nil {
				var zero B
				return zero, err
			}
			return decode(a)
		},
		Write: func(b *Buffer, v B) error { return c.Write(b, encode(v)) },
	}
}

// Optional is a value of type T which may be absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional of |v|.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it's present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// Present returns whether the Optional holds a value.
func (o Optional[T]) Present() bool { return o.present }

// OrElse returns the value if present, or |d| otherwise.
func (o Optional[T]) OrElse(d T) T {
	if o.present {
		return o.value
	}
	return d
}

func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionalCodec encodes an Optional as a presence boolean, followed by the
// |inner| encoding of the value when present.
func OptionalCodec[T any](inner Codec[T]) Codec[Optional[T]] {
	return Codec[Optional[T]]{
		Read: func(b *Buffer) (Optional[T], error) {
			if ok, err := b.ReadBool(); err != nil || !ok {
				return None[T](), err
			}
			var v, err = inner.Read(b)
			if err != nil {
				return None[T](), err
			}
			return Some(v), nil
		},
		Write: func(b *Buffer, o Optional[T]) error {
			var v, ok = o.Get()
			b.WriteBool(ok)
			if !ok {
				return nil
			}
			return inner.Write(b, v)
		},
	}
}

// Codecs of primitive types.
var (
	ByteCodec = Codec[int8]{
		Read:  (*Buffer).ReadInt8,
		Write: func(b *Buffer, v int8) error { b.WriteInt8(v); return nil },
	}
	BoolCodec = Codec[bool]{
		Read:  (*Buffer).ReadBool,
		Write: func(b *Buffer, v bool) error { b.WriteBool(v); return nil },
	}
	ShortCodec = Codec[int16]{
		Read:  (*Buffer).ReadInt16,
		Write: func(b *Buffer, v int16) error { b.WriteInt16(v); return nil },
	}
	FloatCodec = Codec[float32]{
		Read:  (*Buffer).ReadFloat32,
		Write: func(b *Buffer, v float32) error { b.WriteFloat32(v); return nil },
	}
	VarIntCodec = Codec[int32]{
		Read:  (*Buffer).ReadVarInt,
		Write: func(b *Buffer, v int32) error { b.WriteVarInt(v); return nil },
	}
	StringCodec = Codec[string]{
		Read:  func(b *Buffer) (string, error) { return b.ReadString(MaxStringLength) },
		Write: func(b *Buffer, v string) error { b.WriteString(v); return nil },
	}
	UUIDCodec = Codec[uuid.UUID]{
		Read:  (*Buffer).ReadUUID,
		Write: func(b *Buffer, v uuid.UUID) error { b.WriteUUID(v); return nil },
	}
	ComponentCodec = Codec[Component]{
		Read:  (*Buffer).ReadComponent,
		Write: func(b *Buffer, v Component) error { b.WriteComponent(v); return nil },
	}
	Vector3fCodec = Codec[Vector3f]{
		Read: func(b *Buffer) (Vector3f, error) {
			var v Vector3f
			var err error
			if v.X, err = b.ReadFloat32(); err != nil {
				return v, err
			} else if v.Y, err = b.ReadFloat32(); err != nil {
				return v, err
			}
			v.Z, err = b.ReadFloat32()
			return v, err
		},
		Write: func(b *Buffer, v Vector3f) error {
			b.WriteFloat32(v.X)
			b.WriteFloat32(v.Y)
			b.WriteFloat32(v.Z)
			return nil
		},
	}
)

// Component is a structured text component, carried as its JSON text.
type Component string

// MaxComponentLength is the maximum length of a Component's JSON text.
const MaxComponentLength = 262144

// ReadComponent reads a Component.
func (b *Buffer) ReadComponent() (Component, error) {
	var s, err = b.ReadString(MaxComponentLength)
	return Component(s), err
}

// WriteComponent writes a Component.
func (b *Buffer) WriteComponent(c Component) { b.WriteString(string(c)) }

// Vector3f is a triple of floats.
type Vector3f struct{ X, Y, Z float32 }

// Vector3i is a triple of ints, typically a block position.
type Vector3i struct{ X, Y, Z int32 }

func (v Vector3i) String() string { return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z) }
