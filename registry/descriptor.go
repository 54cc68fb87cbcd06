package registry

import (
	"fmt"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/wire"
)

// Type is a version-resolved serializable type, which encodes and decodes
// values of a dynamic Go type. It's implemented by *Descriptor.
type Type interface {
	Entry
	// HasID returns whether the Type has a mapped ID.
	HasID() bool
	// ReadAny decodes a value of the Type.
	ReadAny(*wire.Buffer) (interface{}, error)
	// WriteAny encodes a value of the Type, which must have the Type's Go type.
	WriteAny(*wire.Buffer, interface{}) error
}

// Descriptor is a named, version-resolved serializable type having values
// of Go type T. Its codec works whether or not the Descriptor has an ID.
type Descriptor[T any] struct {
	name  string
	id    int32
	codec wire.Codec[T]
}

// NewDescriptor returns a Descriptor.
func NewDescriptor[T any](name string, id int32, codec wire.Codec[T]) *Descriptor[T] {
	return &Descriptor[T]{name: name, id: id, codec: codec}
}

// Define resolves the ID of |name| from Builder |b|, builds its Descriptor
// with |codec|, and adds it to |b|.
func Define[T any](b *Builder[Type], name string, codec wire.Codec[T]) *Descriptor[T] {
	var d = NewDescriptor(name, b.Resolve(name), codec)
	b.Add(d)
	return d
}

// Name implements Entry.
func (d *Descriptor[T]) Name() string { return d.name }

// ID implements Entry.
func (d *Descriptor[T]) ID() int32 { return d.id }

// HasID implements Type.
func (d *Descriptor[T]) HasID() bool { return d.id != SentinelID }

// Codec returns the Descriptor's Codec.
func (d *Descriptor[T]) Codec() wire.Codec[T] { return d.codec }

// Read decodes a value.
func (d *Descriptor[T]) Read(b *wire.Buffer) (T, error) {
	var v, err = d.codec.Read(b)
	if err != nil {
		return v, errors.WithMessagef(err, "reading %s", d.name)
	}
	return v, nil
}

// Write encodes a value.
func (d *Descriptor[T]) Write(b *wire.Buffer, v T) error {
	if err := d.codec.Write(b, v); err != nil {
		return errors.WithMessagef(err, "writing %s", d.name)
	}
	return nil
}

// ReadAny implements Type.
func (d *Descriptor[T]) ReadAny(b *wire.Buffer) (interface{}, error) { return d.Read(b) }

// WriteAny implements Type.
func (d *Descriptor[T]) WriteAny(b *wire.Buffer, v interface{}) error {
	var t, ok = v.(T)
	if !ok {
		return errors.Errorf("%s expects a %T value (got %T)", d.name, t, v)
	}
	return d.Write(b, t)
}

func (d *Descriptor[T]) String() string {
	return fmt.Sprintf("%s(%d)", d.name, d.id)
}
