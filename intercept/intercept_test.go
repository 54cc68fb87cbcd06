package intercept

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.packetlens.dev/core/codecs"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/pipeline"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
)

var (
	testCompression = pipeline.Compression{Threshold: 32, Codec: codecs.ZLIB}
	testConn        = Connection{
		ID:      uuid.MustParse("6a0d3b8e-4f1c-4b7a-9c2d-1e5f7a9b3c4d"),
		Version: protocol.V1_16_5,
	}
	largeBody = strings.Repeat("abcd", 20)
)

type layout int

const (
	noCompression layout = iota
	orderedCompression
	lateCompression
	lateMisshapen
)

type countingCompressor struct {
	pipeline.Compressor
	calls atomic.Int32
}

func (c *countingCompressor) Encode(ctx *pipeline.Context, in *wire.Buffer) (*wire.Buffer, error) {
	c.calls.Add(1)
	return c.Compressor.Encode(ctx, in)
}

type countingDecompressor struct {
	pipeline.Decompressor
	calls atomic.Int32
}

func (c *countingDecompressor) Decode(ctx *pipeline.Context, in *wire.Buffer) (*wire.Buffer, error) {
	c.calls.Add(1)
	return c.Decompressor.Decode(ctx, in)
}

type harness struct {
	alloc      *wire.PooledAllocator
	chain      *pipeline.Chain
	ic         *Interception
	compress   *countingCompressor
	decompress *countingDecompressor

	mu      sync.Mutex
	frames  bytes.Buffer
	inbound []string
	errs    []error
}

func newHarness(t *testing.T, observer Observer, l layout) *harness {
	var h = &harness{
		alloc:      wire.NewPooledAllocator(),
		compress:   &countingCompressor{Compressor: pipeline.Compressor{Compression: testCompression}},
		decompress: &countingDecompressor{Decompressor: pipeline.Decompressor{Compression: testCompression}},
	}
	h.chain = pipeline.NewChain(h.alloc, h.onOutbound, h.onInbound)
	h.chain.SetErrorHandler(func(err error) {
		h.mu.Lock()
		h.errs = append(h.errs, err)
		h.mu.Unlock()
	})
	require.NoError(t, pipeline.AddFraming(h.chain))

	if l == orderedCompression {
		require.NoError(t, h.chain.AddAfter(pipeline.PrependerName, pipeline.DecompressName, h.decompress))
		require.NoError(t, h.chain.AddAfter(pipeline.DecompressName, pipeline.CompressName, h.compress))
	}
	var err error
	h.ic, err = Install(h.chain, testConn, observer)
	require.NoError(t, err)

	switch l {
	case lateCompression:
		require.NoError(t, h.chain.AddLast(pipeline.DecompressName, h.decompress))
		require.NoError(t, h.chain.AddLast(pipeline.CompressName, h.compress))
	case lateMisshapen:
		require.NoError(t, h.chain.AddLast(pipeline.DecompressName, h.decompress))
		require.NoError(t, h.chain.AddLast(pipeline.CompressName, pipeline.Splitter{}))
	}
	return h
}

func (h *harness) onOutbound(b *wire.Buffer) error {
	h.mu.Lock()
	h.frames.Write(b.Readable())
	h.mu.Unlock()
	b.Release()
	return nil
}

func (h *harness) onInbound(b *wire.Buffer) error {
	h.mu.Lock()
	h.inbound = append(h.inbound, string(b.Readable()))
	h.mu.Unlock()
	b.Release()
	return nil
}

func (h *harness) send(id int32, body string) error {
	var b = h.alloc.Allocate(5 + len(body))
	b.WriteVarInt(id)
	b.WriteBytes([]byte(body))
	return h.chain.Write(b)
}

func (h *harness) receive(frame []byte) error {
	var b = h.alloc.Allocate(len(frame))
	b.WriteBytes(frame)
	return h.chain.Read(b)
}

func packet(id int32, body string) []byte {
	return append(wire.AppendVarInt(nil, id), body...)
}

// encodeFrames frames |packets| as a peer would send them.
func encodeFrames(t *testing.T, cfg *pipeline.Compression, packets ...[]byte) [][]byte {
	var frames [][]byte
	var c = pipeline.NewChain(wire.NewPooledAllocator(), func(b *wire.Buffer) error {
		frames = append(frames, append([]byte(nil), b.Readable()...))
		b.Release()
		return nil
	}, nil)

	require.NoError(t, pipeline.AddFraming(c))
	if cfg != nil {
		require.NoError(t, pipeline.AddCompression(c, *cfg))
	}
	for _, p := range packets {
		require.NoError(t, c.Write(wire.NewBuffer(append([]byte(nil), p...))))
	}
	return frames
}

// decodeFrames decodes packets from |stream| as a peer would receive them.
func decodeFrames(t *testing.T, cfg *pipeline.Compression, stream []byte) []string {
	var alloc = wire.NewPooledAllocator()
	var out []string
	var c = pipeline.NewChain(alloc, nil, func(b *wire.Buffer) error {
		out = append(out, string(b.Readable()))
		b.Release()
		return nil
	})

	require.NoError(t, pipeline.AddFraming(c))
	if cfg != nil {
		require.NoError(t, pipeline.AddCompression(c, *cfg))
	}
	var fr = pipeline.NewFrameReader(bytes.NewReader(stream), alloc)
	for {
		var b, err = fr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NoError(t, c.Read(b))
	}
	require.Equal(t, int64(0), alloc.Outstanding())
	return out
}

type seen struct {
	dir  Direction
	id   int32
	body string
}

type recorder struct {
	mu   sync.Mutex
	seen []seen
}

func (r *recorder) Observe(p *PendingPacket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seen = append(r.seen, seen{p.Direction, p.PacketID, string(p.Buffer().Readable())})
	return nil
}

func checks(outcome string) float64 {
	return testutil.ToFloat64(metrics.CompressionChecksTotal.WithLabelValues(outcome))
}

func TestNoCompressionWorkAfterSingleCheck(t *testing.T) {
	for _, tc := range []struct {
		l   layout
		cfg *pipeline.Compression
	}{
		{noCompression, nil},
		{orderedCompression, &testCompression},
	} {
		var rec = new(recorder)
		var h = newHarness(t, rec, tc.l)
		var names = h.chain.Names()
		var before = checks(metrics.NoRepair)

		for i := 0; i != 1000; i++ {
			require.NoError(t, h.send(int32(i%64), largeBody))
		}
		require.Equal(t, before+1, checks(metrics.NoRepair))
		require.Equal(t, CheckedNoCompression, h.ic.State())
		require.Equal(t, names, h.chain.Names())
		require.Len(t, rec.seen, 1000)
		require.Equal(t, seen{Outbound, 63, largeBody}, rec.seen[63])

		// Only the Chain itself compressed, once per packet.
		if tc.l == orderedCompression {
			require.Equal(t, int32(1000), h.compress.calls.Load())
		}
		require.Equal(t, int32(0), h.decompress.calls.Load())

		var out = decodeFrames(t, tc.cfg, h.frames.Bytes())
		require.Len(t, out, 1000)
		require.Equal(t, string(packet(1, largeBody)), out[1])
		require.Equal(t, int64(0), h.alloc.Outstanding())
	}
}

func TestLateCompressionRepairedByOutboundPacket(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, lateCompression)
	var before = checks(metrics.Repaired)

	require.Equal(t, []string{
		pipeline.SplitterName,
		pipeline.PrependerName,
		pipeline.InterceptDecoderName,
		pipeline.InterceptEncoderName,
		pipeline.DecompressName,
		pipeline.CompressName,
	}, h.chain.Names())

	require.NoError(t, h.send(0x22, largeBody))
	require.Equal(t, CheckedFixApplied, h.ic.State())
	require.Equal(t, before+1, checks(metrics.Repaired))
	require.Equal(t, []string{
		pipeline.SplitterName,
		pipeline.PrependerName,
		pipeline.DecompressName,
		pipeline.InterceptDecoderName,
		pipeline.CompressName,
		pipeline.InterceptEncoderName,
	}, h.chain.Names())

	// The packet was compressed by the Chain, decompressed for observation,
	// and recompressed.
	require.Equal(t, int32(2), h.compress.calls.Load())
	require.Equal(t, int32(1), h.decompress.calls.Load())

	// Later packets arrive uncompressed.
	require.NoError(t, h.send(0x23, largeBody))
	require.Equal(t, int32(3), h.compress.calls.Load())
	require.Equal(t, int32(1), h.decompress.calls.Load())

	for _, f := range encodeFrames(t, &testCompression, packet(0x10, largeBody)) {
		require.NoError(t, h.receive(f))
	}
	require.Equal(t, int32(3), h.compress.calls.Load())
	require.Equal(t, int32(2), h.decompress.calls.Load())

	require.Equal(t, []seen{
		{Outbound, 0x22, largeBody},
		{Outbound, 0x23, largeBody},
		{Inbound, 0x10, largeBody},
	}, rec.seen)
	require.Equal(t, []string{
		string(packet(0x22, largeBody)),
		string(packet(0x23, largeBody)),
	}, decodeFrames(t, &testCompression, h.frames.Bytes()))
	require.Equal(t, []string{string(packet(0x10, largeBody))}, h.inbound)
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestLateCompressionRepairedByInboundPacket(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, lateCompression)

	for _, f := range encodeFrames(t, &testCompression,
		packet(1, largeBody), packet(2, "small")) {
		require.NoError(t, h.receive(f))
	}
	require.Equal(t, CheckedFixApplied, h.ic.State())

	// The first packet was decompressed for observation, recompressed, and
	// then decompressed by the Chain. The second was decompressed once.
	require.Equal(t, int32(3), h.decompress.calls.Load())
	require.Equal(t, int32(1), h.compress.calls.Load())

	require.NoError(t, h.send(3, largeBody))
	require.Equal(t, int32(3), h.decompress.calls.Load())
	require.Equal(t, int32(2), h.compress.calls.Load())

	require.Equal(t, []seen{
		{Inbound, 1, largeBody},
		{Inbound, 2, "small"},
		{Outbound, 3, largeBody},
	}, rec.seen)
	require.Equal(t, []string{string(packet(1, largeBody)), string(packet(2, "small"))}, h.inbound)
	require.Equal(t, []string{string(packet(3, largeBody))},
		decodeFrames(t, &testCompression, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

// reentrantStage calls |fire| from within the first packet it encodes.
type reentrantStage struct {
	fire  func() error
	fired bool
}

func (s *reentrantStage) Encode(_ *pipeline.Context, in *wire.Buffer) (*wire.Buffer, error) {
	if !s.fired {
		s.fired = true
		if err := s.fire(); err != nil {
			in.Release()
			return nil, err
		}
	}
	return in, nil
}

func TestPacketInFlightAcrossRepairIsObservedUncompressed(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, lateCompression)
	var frames = encodeFrames(t, &testCompression, packet(0x10, largeBody))

	// An inbound packet repairs the Chain while an outbound packet is
	// part-way through the prior structure, with compress already behind it.
	require.NoError(t, h.chain.AddLast("reenter", &reentrantStage{fire: func() error {
		return h.receive(frames[0])
	}}))
	require.NoError(t, h.send(0x20, largeBody))

	require.Equal(t, CheckedFixApplied, h.ic.State())
	require.Equal(t, []string{
		pipeline.SplitterName,
		pipeline.PrependerName,
		pipeline.DecompressName,
		pipeline.InterceptDecoderName,
		pipeline.CompressName,
		pipeline.InterceptEncoderName,
		"reenter",
	}, h.chain.Names())

	require.Equal(t, []seen{
		{Inbound, 0x10, largeBody},
		{Outbound, 0x20, largeBody},
	}, rec.seen)

	// Each packet was decompressed for observation, and recompressed.
	require.Equal(t, int32(3), h.compress.calls.Load())
	require.Equal(t, int32(3), h.decompress.calls.Load())

	// Later outbound packets pass compress after observation.
	require.NoError(t, h.send(0x21, largeBody))
	require.Equal(t, seen{Outbound, 0x21, largeBody}, rec.seen[2])
	require.Equal(t, int32(4), h.compress.calls.Load())
	require.Equal(t, int32(3), h.decompress.calls.Load())

	require.Empty(t, h.errs)
	require.Equal(t, []string{string(packet(0x10, largeBody))}, h.inbound)
	require.Equal(t, []string{
		string(packet(0x20, largeBody)),
		string(packet(0x21, largeBody)),
	}, decodeFrames(t, &testCompression, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestPacketsStagedBeforeCompressionAreNotDecompressed(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, noCompression)

	// Compression is enabled while an outbound packet is in flight. The
	// packet runs over a structure without compress, and is observed as-is.
	require.NoError(t, h.chain.AddLast("reenter", &reentrantStage{fire: func() error {
		if err := h.chain.AddLast(pipeline.DecompressName, h.decompress); err != nil {
			return err
		} else if err = h.chain.AddLast(pipeline.CompressName, h.compress); err != nil {
			return err
		}
		// An inbound packet checks and repairs the new structure.
		return h.receive(encodeFrames(t, &testCompression, packet(0x10, "tiny"))[0])
	}}))
	require.NoError(t, h.send(0x20, "uncompressed"))

	require.Equal(t, CheckedFixApplied, h.ic.State())
	require.Equal(t, []seen{
		{Inbound, 0x10, "tiny"},
		{Outbound, 0x20, "uncompressed"},
	}, rec.seen)
	// Only the inbound packet passed through compression Stages.
	require.Equal(t, int32(1), h.compress.calls.Load())
	require.Equal(t, int32(2), h.decompress.calls.Load())
	require.Equal(t, []string{string(packet(0x20, "uncompressed"))},
		decodeFrames(t, nil, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestMutationIsForwarded(t *testing.T) {
	var h = newHarness(t, ObserverFunc(func(p *PendingPacket) error {
		switch p.PacketID {
		case 5:
			p.Replace([]byte("rewritten"))
		case 6:
			p.Buffer().WriteBytes([]byte("!"))
		}
		return nil
	}), noCompression)

	var in = h.alloc.Allocate(16)
	in.WriteBytes(packet(5, "original"))
	in.Retain()

	require.NoError(t, h.chain.Write(in))
	require.NoError(t, h.send(6, "original"))
	require.NoError(t, h.send(7, "original"))

	// The caller's Buffer was released once, and not modified.
	require.Equal(t, int32(1), in.RefCount())
	require.Equal(t, packet(5, "original"), in.Readable())
	in.Release()

	require.Equal(t, []string{
		string(packet(5, "rewritten")),
		string(packet(6, "original!")),
		string(packet(7, "original")),
	}, decodeFrames(t, nil, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestObserverFailuresDropPackets(t *testing.T) {
	var h = newHarness(t, ObserverFunc(func(p *PendingPacket) error {
		switch p.PacketID {
		case 1:
			return errors.New("bad packet")
		case 2:
			panic("boom")
		case 3:
			p.Cancel()
		}
		return nil
	}), lateCompression)

	var oe *ObserverError

	// The repairing packet fails observation, but the repair stands.
	var err = h.send(1, largeBody)
	require.True(t, errors.As(err, &oe))
	require.Equal(t, ObserverError{Conn: testConn.ID, Direction: Outbound, PacketID: 1, Err: oe.Err}, *oe)
	require.EqualError(t, oe.Err, "bad packet")
	require.Equal(t, CheckedFixApplied, h.ic.State())

	err = h.send(2, largeBody)
	require.True(t, errors.As(err, &oe))
	require.EqualError(t, oe.Err, "observer panic: boom")

	require.NoError(t, h.send(3, largeBody))

	err = h.chain.Write(h.alloc.Allocate(0))
	require.True(t, errors.As(err, &oe))
	require.Equal(t, int32(-1), oe.PacketID)
	require.True(t, errors.Is(err, wire.ErrTruncated))

	// The Interception remains usable.
	require.NoError(t, h.send(4, largeBody))

	require.Len(t, h.errs, 3)
	require.Equal(t, []string{string(packet(4, largeBody))},
		decodeFrames(t, &testCompression, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestBookmarks(t *testing.T) {
	var calls int
	var h = newHarness(t, ObserverFunc(func(p *PendingPacket) error {
		calls++
		var buf = p.Buffer()

		var start, body = p.Bookmarks()
		require.Equal(t, 0, start)
		require.Equal(t, 2, body) // 0x80 is a two-byte VarInt.
		require.Equal(t, body, buf.ReaderIndex())

		var _, err = buf.ReadBytes(3)
		require.NoError(t, err)
		p.Complete()
		require.Equal(t, body, buf.ReaderIndex())

		_, err = buf.ReadBytes(3)
		require.NoError(t, err)
		p.Complete() // No effect.
		require.Equal(t, body+3, buf.ReaderIndex())

		return nil
	}), noCompression)

	require.NoError(t, h.send(0x80, "payload"))
	require.NoError(t, h.send(0x80, "payload"))
	require.Equal(t, 2, calls)

	// Forwarded packets were rewound to their start.
	require.Equal(t, []string{string(packet(0x80, "payload")), string(packet(0x80, "payload"))},
		decodeFrames(t, nil, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestPacketsCompletedAfterObserve(t *testing.T) {
	var pending []*PendingPacket
	var h = newHarness(t, ObserverFunc(func(p *PendingPacket) error {
		pending = append(pending, p)

		if p.PacketID == 2 {
			p.Complete()
		}
		var _, err = p.Buffer().ReadBytes(2)
		require.NoError(t, err)
		require.Equal(t, p.PacketID == 2, p.Completed())
		return nil
	}), noCompression)

	require.NoError(t, h.send(1, "payload"))
	require.NoError(t, h.send(2, "payload"))

	require.Len(t, pending, 2)
	for _, p := range pending {
		require.True(t, p.Completed())
	}
	require.Equal(t, []string{string(packet(1, "payload")), string(packet(2, "payload"))},
		decodeFrames(t, nil, h.frames.Bytes()))
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestRepairFailure(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, lateMisshapen)
	var names = h.chain.Names()

	var err = h.send(1, largeBody)
	var re *RepairError
	require.True(t, errors.As(err, &re))
	require.EqualError(t, re, "repairing compression order of "+testConn.ID.String()+": stage compress is not an Encoder")

	require.Equal(t, Unchecked, h.ic.State())
	require.Equal(t, names, h.chain.Names())
	require.Empty(t, rec.seen)
	require.Equal(t, 0, h.frames.Len())
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestConcurrentDirectionsCheckOnce(t *testing.T) {
	var rec = new(recorder)
	var h = newHarness(t, rec, noCompression)
	var before = checks(metrics.NoRepair)

	var frames [][]byte
	for i := 0; i != 500; i++ {
		frames = append(frames, packet(int32(i), "in"))
	}
	frames = encodeFrames(t, nil, frames...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, f := range frames {
			assert.NoError(t, h.receive(f))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i != 500; i++ {
			assert.NoError(t, h.send(int32(i), "out"))
		}
	}()
	wg.Wait()

	require.Equal(t, before+1, checks(metrics.NoRepair))
	require.Len(t, rec.seen, 1000)
	require.Len(t, h.inbound, 500)
	require.Len(t, decodeFrames(t, nil, h.frames.Bytes()), 500)
	require.Equal(t, int64(0), h.alloc.Outstanding())
}

func TestInstallConflicts(t *testing.T) {
	var h = newHarness(t, new(recorder), noCompression)
	var _, err = Install(h.chain, testConn, new(recorder))
	require.True(t, errors.Is(err, pipeline.ErrDuplicateStage))

	var c = pipeline.NewChain(wire.NewPooledAllocator(), nil, nil)
	require.NoError(t, c.AddLast(pipeline.InterceptEncoderName, pipeline.Prepender{}))
	_, err = Install(c, testConn, new(recorder))
	require.True(t, errors.Is(err, pipeline.ErrDuplicateStage))
	require.Equal(t, []string{pipeline.InterceptEncoderName}, c.Names())
}

func TestStrings(t *testing.T) {
	require.Equal(t, "inbound", Inbound.String())
	require.Equal(t, "Direction(7)", Direction(7).String())
	require.Equal(t, "CheckedFixApplied", CheckedFixApplied.String())
	require.Equal(t, "CheckState(9)", CheckState(9).String())

	var p, err = newPendingPacket(&testConn, Outbound, wire.NewBuffer(packet(0x2a, "abc")))
	require.NoError(t, err)
	require.Equal(t, "outbound packet 0x2a of "+testConn.ID.String()+" (4 bytes)", p.String())
	require.Equal(t, protocol.V1_16_5, p.Version)
}
