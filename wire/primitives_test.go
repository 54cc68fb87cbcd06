package wire

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestVarIntEncodingCases(t *testing.T) {
	for _, tc := range []struct {
		v   int32
		enc []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{25565, []byte{0xdd, 0xc7, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{math.MaxInt32, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{math.MinInt32, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	} {
		var b = NewBuffer(nil)
		b.WriteVarInt(tc.v)
		require.Equal(t, tc.enc, b.Bytes(), "value %d", tc.v)
		require.Equal(t, len(tc.enc), VarIntSize(tc.v))

		var out, err = b.ReadVarInt()
		require.NoError(t, err)
		require.Equal(t, tc.v, out)
		require.Equal(t, 0, b.ReadableBytes())
	}
}

func TestVarIntErrors(t *testing.T) {
	var _, err = NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}).ReadVarInt()
	require.Equal(t, ErrVarIntTooBig, err)

	_, err = NewBuffer([]byte{0x80, 0x80}).ReadVarInt()
	require.Equal(t, ErrTruncated, err)

	// Final groups with bits beyond the width of the value.
	_, err = NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0x7f}).ReadVarInt()
	require.Equal(t, ErrVarIntTooBig, err)
	_, err = NewBuffer([]byte{0x80, 0x80, 0x80, 0x80, 0x10}).ReadVarInt()
	require.Equal(t, ErrVarIntTooBig, err)

	var v int32
	v, err = NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}).ReadVarInt()
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestVarLongErrors(t *testing.T) {
	var long = []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	var _, err = NewBuffer(long).ReadVarLong()
	require.Equal(t, ErrVarIntTooBig, err)

	long[9] = 0x81
	_, err = NewBuffer(long).ReadVarLong()
	require.Equal(t, ErrVarIntTooBig, err)

	long[9] = 0x01
	var v int64
	v, err = NewBuffer(long).ReadVarLong()
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestVarLongRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 300, -1, math.MaxInt64, math.MinInt64} {
		var b = NewBuffer(nil)
		b.WriteVarLong(v)
		var out, err = b.ReadVarLong()
		require.NoError(t, err)
		require.Equal(t, v, out)
	}
}

func TestFixedWidthPrimitives(t *testing.T) {
	var b = NewBuffer(nil)
	b.WriteBool(true)
	b.WriteInt8(-2)
	b.WriteInt16(-300)
	b.WriteUint16(65000)
	b.WriteInt32(-70000)
	b.WriteInt64(1 << 40)
	b.WriteFloat32(1.5)
	b.WriteFloat64(-2.25)

	require.Equal(t, []byte{0x01, 0xfe, 0xfe, 0xd4, 0xfd, 0xe8}, b.Bytes()[:6])

	var v1, _ = b.ReadBool()
	var v2, _ = b.ReadInt8()
	var v3, _ = b.ReadInt16()
	var v4, _ = b.ReadUint16()
	var v5, _ = b.ReadInt32()
	var v6, _ = b.ReadInt64()
	var v7, _ = b.ReadFloat32()
	var v8, err = b.ReadFloat64()

	require.NoError(t, err)
	require.Equal(t, true, v1)
	require.Equal(t, int8(-2), v2)
	require.Equal(t, int16(-300), v3)
	require.Equal(t, uint16(65000), v4)
	require.Equal(t, int32(-70000), v5)
	require.Equal(t, int64(1<<40), v6)
	require.Equal(t, float32(1.5), v7)
	require.Equal(t, -2.25, v8)
}

func TestStringCases(t *testing.T) {
	var b = NewBuffer(nil)
	b.WriteString("héllo")
	require.Equal(t, []byte{6, 'h', 0xc3, 0xa9, 'l', 'l', 'o'}, b.Bytes())

	var s, err = b.ReadString(5)
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	// Character limits are enforced.
	b.WriteString("héllo")
	_, err = b.ReadString(4)
	require.Equal(t, ErrStringTooLong, err)

	b.Clear()
	b.WriteString(strings.Repeat("x", 100))
	_, err = b.ReadString(10)
	require.Equal(t, ErrStringTooLong, err)

	b.Clear()
	b.WriteVarInt(-1)
	_, err = b.ReadString(10)
	require.Equal(t, ErrNegativeLength, err)
}

func TestByteArrayAndUUID(t *testing.T) {
	var id = uuid.MustParse("0f6b4d3e-8a4c-4c62-9f0e-2a1b3c4d5e6f")
	var b = NewBuffer(nil)
	b.WriteByteArray([]byte{9, 8, 7})
	b.WriteUUID(id)
	require.Equal(t, 1+3+16, b.WriterIndex())

	var p, err = b.ReadByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8, 7}, p)

	out, err := b.ReadUUID()
	require.NoError(t, err)
	require.Equal(t, id, out)

	_, err = b.ReadUUID()
	require.Equal(t, ErrTruncated, err)
}
