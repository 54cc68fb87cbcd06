package entitydata

import (
	"github.com/pkg/errors"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/registry"
	"go.packetlens.dev/core/wire"
)

// Metadata is an indexed entity data value.
type Metadata struct {
	Index uint8
	Type  registry.Type
	Value interface{}
}

// ErrUnknownType is returned when entity metadata references a type ID
// which isn't in the registry.
var ErrUnknownType = errors.New("unknown entity data type")

const (
	legacyTerminator = 0x7f
	terminator       = 0xff
)

// ReadMetadata reads an entity metadata list. Before 1.9, each entry is
// keyed by a byte holding the type ID in its top three bits and the index in
// the remaining five, and the list ends with 0x7f. From 1.9, each entry is an
// index byte followed by a VarInt type ID, and the list ends with 0xff.
func (t *Types) ReadMetadata(b *wire.Buffer) ([]Metadata, error) {
	var legacy = t.Version().OlderThan(protocol.V1_9)
	var out []Metadata

	for {
		var key, err = b.ReadByte()
		if err != nil {
			return nil, err
		}
		var index uint8
		var id int32

		if legacy {
			if key == legacyTerminator {
				return out, nil
			}
			index, id = key&0x1f, int32(key>>5)
		} else {
			if key == terminator {
				return out, nil
			}
			if id, err = b.ReadVarInt(); err != nil {
				return nil, err
			}
			index = key
		}

		var typ, ok = t.ByID(id)
		if !ok {
			return nil, errors.WithMessagef(ErrUnknownType, "index %d has type ID %d", index, id)
		}
		value, err := typ.ReadAny(b)
		if err != nil {
			return nil, errors.WithMessagef(err, "index %d", index)
		}
		out = append(out, Metadata{Index: index, Type: typ, Value: value})
	}
}

// WriteMetadata writes the entity metadata list |entries|.
func (t *Types) WriteMetadata(b *wire.Buffer, entries []Metadata) error {
	var legacy = t.Version().OlderThan(protocol.V1_9)

	for _, e := range entries {
		if !e.Type.HasID() {
			return errors.WithMessagef(ErrUnknownType, "%s has no ID in version %s", e.Type.Name(), t.Version())
		}
		if legacy {
			var key = uint8(e.Type.ID())<<5 | e.Index
			if e.Index > 0x1f || e.Type.ID() > 7 || key == legacyTerminator {
				return errors.Errorf("index %d of type %s cannot be encoded before 1.9", e.Index, e.Type.Name())
			}
			b.WriteUint8(key)
		} else {
			if e.Index == terminator {
				return errors.Errorf("index %d is reserved", e.Index)
			}
			b.WriteUint8(e.Index)
			b.WriteVarInt(e.Type.ID())
		}
		if err := e.Type.WriteAny(b, e.Value); err != nil {
			return errors.WithMessagef(err, "index %d", e.Index)
		}
	}
	if legacy {
		b.WriteUint8(legacyTerminator)
	} else {
		b.WriteUint8(terminator)
	}
	return nil
}
