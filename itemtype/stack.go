package itemtype

import (
	"fmt"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
)

// ItemStack is a quantity of an ItemType.
type ItemStack struct {
	Type  *ItemType
	Count int8
	// Damage is carried on the wire only before 1.13, which moved it into NBT.
	Damage int16
	NBT    wire.NBT
}

// IsEmpty returns whether the stack holds no items.
func (s ItemStack) IsEmpty() bool {
	return s.Type == nil || s.Type.Key() == "air" || s.Count <= 0
}

func (s ItemStack) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%d x %s", s.Count, s.Type.Name())
}

// ErrUnmappedItem is returned when writing an ItemStack whose ItemType has
// no ID in the active Version.
var ErrUnmappedItem = errors.New("item type has no ID in this version")

// Stack returns an ItemStack of |count| items of |key|, or an empty stack
// if |key| is unknown.
func (t *Types) Stack(key string, count int8) ItemStack {
	var it, ok = t.ByKey(key)
	if !ok {
		return ItemStack{Type: t.Air}
	}
	return ItemStack{Type: it, Count: count}
}

// StackCodec returns the Codec of ItemStacks in the Types' Version. Layouts:
//
//   - 1.13.2 and later: presence bool, VarInt ID, count byte, NBT.
//   - 1.13 and 1.13.1:  short ID (-1 if empty), count byte, NBT.
//   - Before 1.13:      short ID (-1 if empty), count byte, short damage, NBT.
//
// NBT is gzipped before 1.8.
func (t *Types) StackCodec() wire.Codec[ItemStack] {
	var v = t.Version()
	var nbt = wire.NBTCodec(wire.NBTEncodingFor(v))

	if v.NewerThanOrEquals(protocol.V1_13_2) {
		return wire.Codec[ItemStack]{
			Read: func(b *wire.Buffer) (ItemStack, error) {
				var out = ItemStack{Type: t.Air}

				if present, err := b.ReadBool(); err != nil || !present {
					return out, err
				}
				var id, err = b.ReadVarInt()
				if err != nil {
					return out, err
				}
				out.Type = t.ByID(id)

				if out.Count, err = b.ReadInt8(); err != nil {
					return out, err
				}
				out.NBT, err = nbt.Read(b)
				return out, err
			},
			Write: func(b *wire.Buffer, s ItemStack) error {
				if s.IsEmpty() {
					b.WriteBool(false)
					return nil
				} else if !s.Type.hasID() {
					return errors.WithMessage(ErrUnmappedItem, s.Type.Name())
				}
				b.WriteBool(true)
				b.WriteVarInt(s.Type.ID())
				b.WriteInt8(s.Count)
				return nbt.Write(b, s.NBT)
			},
		}
	}
	var legacyDamage = v.OlderThan(protocol.V1_13)

	return wire.Codec[ItemStack]{
		Read: func(b *wire.Buffer) (ItemStack, error) {
			var out = ItemStack{Type: t.Air}

			var id, err = b.ReadInt16()
			if err != nil || id < 0 {
				return out, err
			}
			out.Type = t.ByID(int32(id))

			if out.Count, err = b.ReadInt8(); err != nil {
				return out, err
			}
			if legacyDamage {
				if out.Damage, err = b.ReadInt16(); err != nil {
					return out, err
				}
			}
			out.NBT, err = nbt.Read(b)
			return out, err
		},
		Write: func(b *wire.Buffer, s ItemStack) error {
			if s.IsEmpty() {
				b.WriteInt16(-1)
				return nil
			} else if !s.Type.hasID() {
				return errors.WithMessage(ErrUnmappedItem, s.Type.Name())
			}
			b.WriteInt16(int16(s.Type.ID()))
			b.WriteInt8(s.Count)
			if legacyDamage {
				b.WriteInt16(s.Damage)
			}
			return nbt.Write(b, s.NBT)
		},
	}
}

func (t *ItemType) hasID() bool { return t.id >= 0 }
