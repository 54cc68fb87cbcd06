package wire

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.packetlens.dev/core/protocol"
)

func TestPlainNBTRoundTrip(t *testing.T) {
	var tag = NewNBTBuilder("").
		Int("Damage", 3).
		Begin("display").
		String("Name", `{"text":"Sword"}`).
		End().
		Build()

	var b = NewBuffer(nil)
	b.WriteNBT(tag)
	b.WriteByte(0x42) // Trailing content is left unread.

	var out, err = b.ReadNBT()
	require.NoError(t, err)
	require.Equal(t, tag, out)
	require.Equal(t, TagCompound, out.RootType())
	require.Equal(t, []byte{0x42}, b.Readable())
}

func TestEmptyNBT(t *testing.T) {
	var b = NewBuffer(nil)
	b.WriteNBT(NBT{})
	require.Equal(t, []byte{TagEnd}, b.Bytes())

	var out, err = b.ReadNBT()
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
	require.Equal(t, TagEnd, out.RootType())

	require.NoError(t, b.WriteGzippedNBT(NBT{}))
	require.Equal(t, []byte{0xff, 0xff}, b.Readable())
	out, err = b.ReadGzippedNBT()
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}

func TestGzippedNBTRoundTrip(t *testing.T) {
	var tag = NewNBTBuilder("tag").Int("a", 1).Int("b", 2).Build()

	var b = NewBuffer(nil)
	require.NoError(t, b.WriteGzippedNBT(tag))
	require.NotEqual(t, tag.Raw, b.Bytes()[2:])

	var out, err = b.ReadGzippedNBT()
	require.NoError(t, err)
	require.Equal(t, tag, out)
	require.Equal(t, 0, b.ReadableBytes())
}

func TestNBTCodecSelection(t *testing.T) {
	require.Equal(t, GzippedNBT, NBTEncodingFor(protocol.V1_7_10))
	require.Equal(t, PlainNBT, NBTEncodingFor(protocol.V1_8))

	var tag = NewNBTBuilder("").String("k", "v").Build()
	for _, enc := range []NBTEncoding{PlainNBT, GzippedNBT} {
		var b = NewBuffer(nil)
		require.NoError(t, NBTCodec(enc).Write(b, tag))
		var out, err = NBTCodec(enc).Read(b)
		require.NoError(t, err)
		require.Equal(t, tag, out)
	}
}

func TestNBTMalformed(t *testing.T) {
	var nb = NewNBTBuilder("")
	for i := 0; i != MaxNBTDepth+1; i++ {
		nb.Begin("x")
	}
	for i := 0; i != MaxNBTDepth+1; i++ {
		nb.End()
	}
	var _, err = NewBuffer(nb.Build().Raw).ReadNBT()
	require.Equal(t, ErrNBTDepth, err)

	_, err = NewBuffer([]byte{TagCompound, 0, 0, 99, 0, 0}).ReadNBT()
	require.True(t, errors.Is(err, ErrUnknownNBTTag))

	// Missing the closing TAG_End.
	var raw = NewNBTBuilder("").Int("a", 1).Build().Raw
	_, err = NewBuffer(raw[:len(raw)-1]).ReadNBT()
	require.Equal(t, ErrTruncated, err)
}
