package entitydata

import (
	"embed"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.packetlens.dev/core/itemtype"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/registry"
	"go.packetlens.dev/core/wire"
)

// CatalogName is the name of the entity data type Catalog and its mapping document.
const CatalogName = "entity_data_types"

// Buckets of entity data type mapping tables.
var Buckets = registry.Buckets(
	registry.Bucket{Since: protocol.V1_8, Name: "V_1_8"},
	registry.Bucket{Since: protocol.V1_9, Name: "V_1_9"},
	registry.Bucket{Since: protocol.V1_11, Name: "V_1_11"},
	registry.Bucket{Since: protocol.V1_13, Name: "V_1_16"},
)

//go:embed mappings/*.json
var mappings embed.FS

// EmbeddedSource is the Source of entity data type mapping documents built
// into the package.
var EmbeddedSource = registry.EmbedSource(mappings, "mappings")

// NewCatalog returns the entity data type Catalog, reading from |source|.
func NewCatalog(source registry.Source) *registry.Catalog {
	return registry.NewCatalog(CatalogName, source, Buckets)
}

// Types are the entity data types of a protocol Version. Types which don't
// exist in the Version have registry.SentinelID, and can still encode and
// decode values.
type Types struct {
	Byte                  *registry.Descriptor[int8]
	Int                   *registry.Descriptor[int32]
	Float                 *registry.Descriptor[float32]
	String                *registry.Descriptor[string]
	Component             *registry.Descriptor[wire.Component]
	OptionalComponent     *registry.Descriptor[wire.Optional[wire.Component]]
	ItemStack             *registry.Descriptor[itemtype.ItemStack]
	OptionalBlockState    *registry.Descriptor[int32]
	Boolean               *registry.Descriptor[bool]
	Particle              *registry.Descriptor[int32]
	Rotation              *registry.Descriptor[wire.Vector3f]
	BlockPosition         *registry.Descriptor[wire.Vector3i]
	OptionalBlockPosition *registry.Descriptor[wire.Optional[wire.Vector3i]]
	BlockFace             *registry.Descriptor[BlockFace]
	OptionalUUID          *registry.Descriptor[wire.Optional[uuid.UUID]]
	NBT                   *registry.Descriptor[wire.NBT]
	VillagerData          *registry.Descriptor[int32]
	OptionalInt           *registry.Descriptor[wire.Optional[int32]]
	EntityPose            *registry.Descriptor[EntityPose]
	// Short was removed in 1.9.
	Short *registry.Descriptor[int16]

	reg *registry.Registry[registry.Type]
}

// New builds the entity data Types of Version |v| from |catalog|. Item
// stacks are encoded using |items|, which must be of the same Version.
func New(catalog *registry.Catalog, v protocol.Version, items *itemtype.Types) (*Types, error) {
	if items.Version() != v {
		return nil, errors.Errorf("item types version %s doesn't match %s", items.Version(), v)
	}
	var b = registry.NewBuilder[registry.Type](catalog, v)
	var t = new(Types)

	// Integers and block positions were widened to VarInt and packed longs in 1.9.
	var intCodec = wire.IntCodec(wire.FixedInt)
	var positionCodec = wire.PositionCodec(wire.ThreeInts)

	if v.NewerThanOrEquals(protocol.V1_9) {
		intCodec = wire.IntCodec(wire.VarIntEncoding)
		positionCodec = wire.PositionCodec(wire.PackedPositionFor(v))
	}

	t.Byte = registry.Define(b, "byte", wire.ByteCodec)
	t.Int = registry.Define(b, "int", intCodec)
	t.Float = registry.Define(b, "float", wire.FloatCodec)
	t.String = registry.Define(b, "string", wire.StringCodec)
	t.Component = registry.Define(b, "component", wire.ComponentCodec)
	t.OptionalComponent = registry.Define(b, "optional_component", wire.OptionalCodec(wire.ComponentCodec))
	t.ItemStack = registry.Define(b, "itemstack", items.StackCodec())
	t.OptionalBlockState = registry.Define(b, "optional_block_state", intCodec)
	t.Boolean = registry.Define(b, "boolean", wire.BoolCodec)
	t.Particle = registry.Define(b, "particle", wire.VarIntCodec)
	t.Rotation = registry.Define(b, "rotation", wire.Vector3fCodec)
	t.BlockPosition = registry.Define(b, "block_position", positionCodec)
	t.OptionalBlockPosition = registry.Define(b, "optional_block_position", wire.OptionalCodec(positionCodec))
	t.BlockFace = registry.Define(b, "block_face", blockFaceCodec)
	t.OptionalUUID = registry.Define(b, "optional_uuid", wire.OptionalCodec(wire.UUIDCodec))
	t.NBT = registry.Define(b, "nbt", wire.NBTCodec(wire.NBTEncodingFor(v)))
	t.VillagerData = registry.Define(b, "villager_data", wire.VarIntCodec)
	t.OptionalInt = registry.Define(b, "optional_int", wire.OptionalCodec(wire.VarIntCodec))
	t.EntityPose = registry.Define(b, "entity_pose", entityPoseCodec)
	t.Short = registry.Define(b, "short", wire.ShortCodec)

	var err error
	if t.reg, err = b.Build(); err != nil {
		return nil, err
	}
	return t, nil
}

// ByID returns the Type of wire |id|, and whether it exists.
func (t *Types) ByID(id int32) (registry.Type, bool) { return t.reg.ByID(id) }

// ByName returns the Type of |name|, and whether it exists.
func (t *Types) ByName(name string) (registry.Type, bool) { return t.reg.ByName(name) }

// Registry returns the underlying Registry of Types.
func (t *Types) Registry() *registry.Registry[registry.Type] { return t.reg }

// Version returns the Version of the Types.
func (t *Types) Version() protocol.Version { return t.reg.Version() }
