package itemtype

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/registry"
	"go.packetlens.dev/core/wire"
)

func newTypes(t *testing.T, v protocol.Version) *Types {
	var types, err = New(NewCatalog(EmbeddedSource), v)
	require.NoError(t, err)
	return types
}

func TestIDsAreResolvedPerBucket(t *testing.T) {
	for _, tc := range []struct {
		v            protocol.Version
		bucket       string
		stone, sword int32
		ingot        int32
	}{
		{protocol.V1_8_8, "V_1_12", 1, 276, registry.SentinelID},
		{protocol.V1_12_2, "V_1_12", 1, 276, registry.SentinelID},
		{protocol.V1_13_1, "V_1_13", 692, 231, registry.SentinelID},
		{protocol.V1_13_2, "V_1_13_2", 692, 231, registry.SentinelID},
		{protocol.V1_14_4, "V_1_14", 770, 252, registry.SentinelID},
		{protocol.V1_16_5, "V_1_16", 843, 282, 593},
		{protocol.V1_18_2, "V_1_18", 943, 328, 666},
	} {
		var types = newTypes(t, tc.v)
		require.Equal(t, tc.bucket, types.Registry().Bucket().Name)
		require.Equal(t, tc.v, types.Version())

		var stone, _ = types.ByKey("stone")
		var sword, _ = types.ByKey("minecraft:diamond_sword")
		var ingot, _ = types.ByKey("netherite_ingot")

		require.Equal(t, tc.stone, stone.ID(), "%s", tc.v)
		require.Equal(t, tc.sword, sword.ID(), "%s", tc.v)
		require.Equal(t, tc.ingot, ingot.ID(), "%s", tc.v)

		// Mapped IDs round-trip.
		require.Equal(t, stone, types.ByID(stone.ID()))
		require.Equal(t, sword, types.ByID(sword.ID()))
		require.Equal(t, int32(0), types.Air.ID())
	}
}

func TestUnknownIDsFallBackToAir(t *testing.T) {
	var types = newTypes(t, protocol.V1_16_5)

	require.Equal(t, types.Air, types.ByID(99999))
	require.Equal(t, types.Air, types.ByID(registry.SentinelID))

	var _, ok = types.ByKey("not_an_item")
	require.False(t, ok)
	require.True(t, types.Stack("not_an_item", 3).IsEmpty())
}

func TestItemTypeProperties(t *testing.T) {
	var types = newTypes(t, protocol.V1_17_1)

	var milk, _ = types.ByKey("milk_bucket")
	var bucket, _ = types.ByKey("bucket")
	require.Equal(t, bucket, milk.CraftRemainder())
	require.Equal(t, 1, milk.MaxAmount())
	require.Nil(t, bucket.CraftRemainder())

	var axe, _ = types.ByKey("netherite_axe")
	require.Equal(t, 2031, axe.MaxDurability())
	require.True(t, axe.Has(FireResistant|NetheriteTier))
	require.False(t, axe.Has(Edible))
	require.Equal(t, "FireResistant|NetheriteTier", axe.Attributes().String())

	var disc, _ = types.ByKey("music_disc_stal")
	require.True(t, disc.IsMusicDisc())
	require.Equal(t, "minecraft:music_disc_stal", disc.Name())
	require.Equal(t, "music_disc_stal", disc.Key())

	var egg, _ = types.ByKey("egg")
	require.Equal(t, 16, egg.MaxAmount())

	require.Equal(t, len(definitions), types.Registry().Len())
}

func TestModernStackCodec(t *testing.T) {
	var types = newTypes(t, protocol.V1_16_5)
	var codec = types.StackCodec()
	var tag = wire.NewNBTBuilder("").Int("Damage", 12).Build()

	var stack = types.Stack("diamond_sword", 1)
	stack.NBT = tag

	var b = wire.NewBuffer(nil)
	require.NoError(t, codec.Write(b, stack))
	require.NoError(t, codec.Write(b, ItemStack{Type: types.Air}))
	require.Equal(t, []byte{0x01, 0x9a, 0x02, 0x01}, b.Bytes()[:4]) // 282 as VarInt.

	var out, err = codec.Read(b)
	require.NoError(t, err)
	require.Equal(t, stack, out)
	require.Equal(t, "1 x minecraft:diamond_sword", out.String())

	out, err = codec.Read(b)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
	require.Equal(t, "empty", out.String())
	require.Equal(t, 0, b.ReadableBytes())
}

func TestFlatteningStackCodec(t *testing.T) {
	var types = newTypes(t, protocol.V1_13)
	var codec = types.StackCodec()

	var b = wire.NewBuffer(nil)
	require.NoError(t, codec.Write(b, types.Stack("stone", 64)))
	require.Equal(t, []byte{0x02, 0xb4, 0x40, wire.TagEnd}, b.Bytes()) // 692, 64, no NBT.

	var out, err = codec.Read(b)
	require.NoError(t, err)
	require.Equal(t, types.Stack("stone", 64), out)
}

func TestLegacyStackCodec(t *testing.T) {
	for _, v := range []protocol.Version{protocol.V1_7_10, protocol.V1_12_2} {
		var types = newTypes(t, v)
		var codec = types.StackCodec()

		var stack = types.Stack("diamond_sword", 1)
		stack.Damage = 17
		stack.NBT = wire.NewNBTBuilder("").String("Name", "Excalibur").Build()

		var b = wire.NewBuffer(nil)
		require.NoError(t, codec.Write(b, stack))
		require.NoError(t, codec.Write(b, ItemStack{}))
		require.Equal(t, []byte{0x01, 0x14, 0x01, 0x00, 0x11}, b.Bytes()[:5])

		var out, err = codec.Read(b)
		require.NoError(t, err)
		require.Equal(t, stack, out)

		out, err = codec.Read(b)
		require.NoError(t, err)
		require.True(t, out.IsEmpty())
		require.Equal(t, 0, b.ReadableBytes())
	}
}

func TestWritingUnmappedItemFails(t *testing.T) {
	var types = newTypes(t, protocol.V1_15_2)
	var err = types.StackCodec().Write(wire.NewBuffer(nil), types.Stack("netherite_ingot", 1))
	require.True(t, errors.Is(err, ErrUnmappedItem))
}

func TestMissingBucketIsConfigurationError(t *testing.T) {
	var fs = afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/override/item_types.json",
		[]byte(`{"V_1_12": {"minecraft:air": 0}}`), 0644))

	var _, err = New(NewCatalog(registry.DirSource(fs, "/override")), protocol.V1_16)
	var ce *registry.ConfigurationError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "V_1_16", ce.Bucket)

	// The override applies where it has the bucket.
	types, err := New(NewCatalog(registry.DirSource(fs, "/override")), protocol.V1_12)
	require.NoError(t, err)
	var stone, _ = types.ByKey("stone")
	require.Equal(t, registry.SentinelID, stone.ID())
}
