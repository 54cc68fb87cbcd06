package pipeline

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.packetlens.dev/core/wire"
)

// tagStage appends its tag to every buffer it sees.
type tagStage struct{ tag string }

func (s tagStage) Encode(_ *Context, in *wire.Buffer) (*wire.Buffer, error) {
	in.WriteBytes([]byte(s.tag))
	return in, nil
}

func (s tagStage) Decode(_ *Context, in *wire.Buffer) (*wire.Buffer, error) {
	in.WriteBytes([]byte(s.tag))
	return in, nil
}

type capture struct{ out []string }

func (c *capture) sink(b *wire.Buffer) error {
	c.out = append(c.out, string(b.Readable()))
	b.Release()
	return nil
}

func newTestChain(alloc wire.Allocator) (*Chain, *capture, *capture) {
	var outbound, inbound = new(capture), new(capture)
	return NewChain(alloc, outbound.sink, inbound.sink), outbound, inbound
}

func TestChainStructure(t *testing.T) {
	var c, _, _ = newTestChain(wire.NewPooledAllocator())

	require.NoError(t, c.AddLast("b", tagStage{"b"}))
	require.NoError(t, c.AddFirst("a", tagStage{"a"}))
	require.NoError(t, c.AddLast("d", tagStage{"d"}))
	require.NoError(t, c.AddBefore("d", "c", tagStage{"c"}))
	require.NoError(t, c.AddAfter("d", "e", tagStage{"e"}))
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, c.Names())

	require.Equal(t, 2, c.IndexOf("c"))
	require.Equal(t, -1, c.IndexOf("zz"))
	require.Equal(t, tagStage{"c"}, c.Get("c"))
	require.Nil(t, c.Get("zz"))

	require.NoError(t, c.MoveAfter("a", "d"))
	require.Equal(t, []string{"b", "c", "d", "a", "e"}, c.Names())
	require.NoError(t, c.MoveAfter("e", "b"))
	require.Equal(t, []string{"b", "e", "c", "d", "a"}, c.Names())

	var s, err = c.Remove("c")
	require.NoError(t, err)
	require.Equal(t, tagStage{"c"}, s)
	require.Equal(t, []string{"b", "e", "d", "a"}, c.Names())

	// Error cases.
	require.True(t, errors.Is(c.AddLast("a", tagStage{}), ErrDuplicateStage))
	require.True(t, errors.Is(c.AddAfter("zz", "f", tagStage{}), ErrNoSuchStage))
	require.True(t, errors.Is(c.AddBefore("zz", "f", tagStage{}), ErrNoSuchStage))
	require.True(t, errors.Is(c.MoveAfter("zz", "a"), ErrNoSuchStage))
	require.True(t, errors.Is(c.MoveAfter("a", "zz"), ErrNoSuchStage))
	require.EqualError(t, c.MoveAfter("a", "a"), "cannot move a after itself")
	_, err = c.Remove("zz")
	require.EqualError(t, err, "zz: no such stage")

	require.EqualError(t, c.AddLast("f", 42), "stage f is neither an Encoder nor a Decoder")
	require.Error(t, c.AddLast("", tagStage{}))
	require.Error(t, c.AddLast("has space", tagStage{}))

	// Failed operations left the Chain unchanged.
	require.Equal(t, []string{"b", "e", "d", "a"}, c.Names())
}

func TestChainDirections(t *testing.T) {
	var alloc = wire.NewPooledAllocator()
	var c, outbound, inbound = newTestChain(alloc)

	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, c.AddLast(n, tagStage{n}))
	}

	var b = alloc.Allocate(8)
	b.WriteBytes([]byte("out:"))
	require.NoError(t, c.Write(b))

	b = alloc.Allocate(8)
	b.WriteBytes([]byte("in:"))
	require.NoError(t, c.Read(b))

	require.Equal(t, []string{"out:cba"}, outbound.out)
	require.Equal(t, []string{"in:abc"}, inbound.out)
	require.Equal(t, int64(0), alloc.Outstanding())
}

// moverStage moves itself immediately tail-ward of |base| the first time it runs.
type moverStage struct {
	base  string
	moved bool
}

func (s *moverStage) Encode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error) {
	if !s.moved {
		s.moved = true
		if err := ctx.Chain().MoveAfter(ctx.Name(), s.base); err != nil {
			return nil, err
		}
	}
	in.WriteBytes([]byte("M"))
	return in, nil
}

func TestRestructureAppliesToNextPacket(t *testing.T) {
	var c, outbound, _ = newTestChain(wire.NewPooledAllocator())

	require.NoError(t, c.AddLast("a", tagStage{"a"}))
	require.NoError(t, c.AddLast("b", tagStage{"b"}))
	require.NoError(t, c.AddLast("mover", &moverStage{base: "a"}))

	require.NoError(t, c.Write(wire.NewBuffer(nil)))
	require.Equal(t, []string{"a", "mover", "b"}, c.Names())
	require.NoError(t, c.Write(wire.NewBuffer(nil)))

	// The in-flight packet neither replayed nor skipped a Stage.
	require.Equal(t, []string{"Mba", "bMa"}, outbound.out)
}

// positionStage records the positions it observes through its Context,
// before and after moving itself tail-ward of |base|.
type positionStage struct {
	base string
	seen [][2]int
}

func (s *positionStage) Encode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error) {
	s.seen = append(s.seen, [2]int{ctx.Index(), ctx.IndexOf(s.base)})
	if ctx.Chain().IndexOf(ctx.Name()) < ctx.Chain().IndexOf(s.base) {
		if err := ctx.Chain().MoveAfter(ctx.Name(), s.base); err != nil {
			return nil, err
		}
		s.seen = append(s.seen, [2]int{ctx.Index(), ctx.IndexOf(s.base)})
	}
	return in, nil
}

func TestContextPositionsReflectRunningStructure(t *testing.T) {
	var c, outbound, _ = newTestChain(wire.NewPooledAllocator())
	var pos = &positionStage{base: "b"}

	require.NoError(t, c.AddLast("a", tagStage{"a"}))
	require.NoError(t, c.AddLast("pos", pos))
	require.NoError(t, c.AddLast("b", tagStage{"b"}))

	require.NoError(t, c.Write(wire.NewBuffer(nil)))
	require.NoError(t, c.Write(wire.NewBuffer(nil)))

	require.Equal(t, [][2]int{
		{1, 2}, // First packet, before the move.
		{1, 2}, // Still the structure the first packet runs over.
		{2, 1}, // Second packet runs over the moved structure.
	}, pos.seen)
	require.Equal(t, []string{"ba", "ba"}, outbound.out)

	// Contexts built directly from the Chain reflect its current structure.
	var ctx = c.Context("pos")
	require.Equal(t, "pos", ctx.Name())
	require.Equal(t, 2, ctx.Index())
	require.Equal(t, 1, ctx.IndexOf("b"))
	require.Equal(t, -1, ctx.IndexOf("zz"))
	require.Equal(t, -1, c.Context("zz").Index())
}

type dropStage struct{}

func (dropStage) Decode(_ *Context, in *wire.Buffer) (*wire.Buffer, error) {
	in.Release()
	return nil, nil
}

type failStage struct{}

func (failStage) Encode(_ *Context, in *wire.Buffer) (*wire.Buffer, error) {
	in.Release()
	return nil, errors.New("whoops")
}

func TestDropsAndErrors(t *testing.T) {
	var alloc = wire.NewPooledAllocator()
	var c, outbound, inbound = newTestChain(alloc)

	var reported []error
	c.SetErrorHandler(func(err error) { reported = append(reported, err) })

	require.NoError(t, c.AddLast("fail", failStage{}))
	require.NoError(t, c.AddLast("drop", dropStage{}))
	require.NoError(t, c.AddLast("tag", tagStage{"t"}))

	// Decoders: "fail" is skipped, and "drop" stops the packet before "tag".
	require.NoError(t, c.Read(alloc.Allocate(1)))
	assert.Empty(t, inbound.out)

	var err = c.Write(alloc.Allocate(1))
	require.EqualError(t, err, "encoding at fail: whoops")
	require.Equal(t, []error{err}, reported)
	assert.Empty(t, outbound.out)

	require.Equal(t, int64(0), alloc.Outstanding())
}

func TestSinkErrors(t *testing.T) {
	var c = NewChain(wire.NewPooledAllocator(),
		func(b *wire.Buffer) error { b.Release(); return errors.New("closed") },
		func(b *wire.Buffer) error { b.Release(); return nil },
	)
	var reported int
	c.SetErrorHandler(func(error) { reported++ })

	require.EqualError(t, c.Write(wire.NewBuffer(nil)), "outbound sink: closed")
	require.NoError(t, c.Read(wire.NewBuffer(nil)))
	require.Equal(t, 1, reported)
}
