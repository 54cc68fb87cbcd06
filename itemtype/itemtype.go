package itemtype

import (
	"embed"
	"strings"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/registry"
)

// CatalogName is the name of the item type Catalog and its mapping document.
const CatalogName = "item_types"

// Namespace of item type keys.
const Namespace = "minecraft"

// Buckets of item type mapping tables.
var Buckets = registry.Buckets(
	registry.Bucket{Since: protocol.V1_12, Name: "V_1_12"},
	registry.Bucket{Since: protocol.V1_13, Name: "V_1_13"},
	registry.Bucket{Since: protocol.V1_13_2, Name: "V_1_13_2"},
	registry.Bucket{Since: protocol.V1_14, Name: "V_1_14"},
	registry.Bucket{Since: protocol.V1_15, Name: "V_1_15"},
	registry.Bucket{Since: protocol.V1_16, Name: "V_1_16"},
	registry.Bucket{Since: protocol.V1_17, Name: "V_1_17"},
	registry.Bucket{Since: protocol.V1_18, Name: "V_1_18"},
)

//go:embed mappings/*.json
var mappings embed.FS

// EmbeddedSource is the Source of item type mapping documents built into
// the package.
var EmbeddedSource = registry.EmbedSource(mappings, "mappings")

// NewCatalog returns the item type Catalog, reading from |source|.
func NewCatalog(source registry.Source) *registry.Catalog {
	return registry.NewCatalog(CatalogName, source, Buckets)
}

// Attribute is a set of item type properties.
type Attribute uint16

// Attributes of item types.
const (
	MusicDisc Attribute = 1 << iota
	Edible
	FireResistant
	WoodTier
	StoneTier
	IronTier
	DiamondTier
	GoldTier
	NetheriteTier
)

var attributeNames = []string{
	"MusicDisc",
	"Edible",
	"FireResistant",
	"WoodTier",
	"StoneTier",
	"IronTier",
	"DiamondTier",
	"GoldTier",
	"NetheriteTier",
}

func (a Attribute) String() string {
	var parts []string
	for i, name := range attributeNames {
		if a&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

type definition struct {
	Key            string
	MaxAmount      int
	MaxDurability  int
	CraftRemainder string
	Attributes     Attribute
}

// ItemType is a kind of item, resolved for a protocol Version.
type ItemType struct {
	name           string
	id             int32
	maxAmount      int
	maxDurability  int
	craftRemainder *ItemType
	attributes     Attribute
}

// Name is the namespaced key of the ItemType, eg "minecraft:stone".
func (t *ItemType) Name() string { return t.name }

// ID is the wire ID of the ItemType, or registry.SentinelID if the
// ItemType doesn't exist in the resolved Version.
func (t *ItemType) ID() int32 { return t.id }

// Key is the ItemType's key without namespace, eg "stone".
func (t *ItemType) Key() string { return strings.TrimPrefix(t.name, Namespace+":") }

// MaxAmount is the maximum stack size.
func (t *ItemType) MaxAmount() int { return t.maxAmount }

// MaxDurability is the maximum damage the item sustains, or zero.
func (t *ItemType) MaxDurability() int { return t.maxDurability }

// CraftRemainder is the ItemType left after the item is used in crafting,
// or nil.
func (t *ItemType) CraftRemainder() *ItemType { return t.craftRemainder }

// Attributes of the ItemType.
func (t *ItemType) Attributes() Attribute { return t.attributes }

// Has returns whether the ItemType has all of Attribute |a|.
func (t *ItemType) Has(a Attribute) bool { return t.attributes&a == a }

// IsMusicDisc returns whether the ItemType is a music disc.
func (t *ItemType) IsMusicDisc() bool { return t.Has(MusicDisc) }

func (t *ItemType) String() string { return t.name }

// Types is the catalog of ItemTypes of a protocol Version.
type Types struct {
	// Air is the ItemType of empty stacks, and the fallback of unknown IDs.
	Air *ItemType

	reg *registry.Registry[*ItemType]
}

// New builds the ItemTypes of Version |v| from |catalog|.
func New(catalog *registry.Catalog, v protocol.Version) (*Types, error) {
	var b = registry.NewBuilder[*ItemType](catalog, v)
	var byKey = make(map[string]*ItemType, len(definitions))

	for _, d := range definitions {
		var name = Namespace + ":" + d.Key
		byKey[d.Key] = &ItemType{
			name:          name,
			id:            b.Resolve(name),
			maxAmount:     d.MaxAmount,
			maxDurability: d.MaxDurability,
			attributes:    d.Attributes,
		}
	}
	for _, d := range definitions {
		var t = byKey[d.Key]

		if d.CraftRemainder != "" {
			if t.craftRemainder = byKey[d.CraftRemainder]; t.craftRemainder == nil {
				return nil, errors.Errorf("item type %s has unknown craft remainder %s", d.Key, d.CraftRemainder)
			}
		}
		b.Add(t)
	}

	var reg, err = b.Build()
	if err != nil {
		return nil, err
	}
	var out = &Types{reg: reg}

	if out.Air = byKey["air"]; out.Air == nil {
		return nil, errors.New("item types are missing air")
	}
	return out, nil
}

// ByKey returns the ItemType of |key|, which may be namespaced
// ("minecraft:stone") or not ("stone").
func (t *Types) ByKey(key string) (*ItemType, bool) {
	if !strings.Contains(key, ":") {
		key = Namespace + ":" + key
	}
	return t.reg.ByName(key)
}

// ByID returns the ItemType of |id|. Unknown IDs map to Air.
func (t *Types) ByID(id int32) *ItemType {
	if out, ok := t.reg.ByID(id); ok {
		return out
	}
	return t.Air
}

// Registry returns the underlying Registry of ItemTypes.
func (t *Types) Registry() *registry.Registry[*ItemType] { return t.reg }

// Version returns the Version of the Types.
func (t *Types) Version() protocol.Version { return t.reg.Version() }
