package proxy

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.packetlens.dev/core/codecs"
	"go.packetlens.dev/core/intercept"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/pipeline"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
)

var (
	testCompression = pipeline.Compression{Threshold: 16, Codec: codecs.ZLIB}
	largeBody       = strings.Repeat("packetlens ", 20)
)

// peer is a client or game server at the far end of a net.Pipe.
type peer struct {
	conn     net.Conn
	fr       *pipeline.FrameReader
	enc, dec *pipeline.Chain
	got      []string
}

func newPeer(t *testing.T, conn net.Conn, cfg *pipeline.Compression) *peer {
	var alloc = wire.NewPooledAllocator()
	var p = &peer{conn: conn, fr: pipeline.NewFrameReader(conn, alloc)}

	p.enc = pipeline.NewChain(alloc, func(b *wire.Buffer) error {
		defer b.Release()
		var _, err = conn.Write(b.Readable())
		return err
	}, nil)
	p.dec = pipeline.NewChain(alloc, nil, func(b *wire.Buffer) error {
		p.got = append(p.got, string(b.Readable()))
		b.Release()
		return nil
	})

	for _, c := range []*pipeline.Chain{p.enc, p.dec} {
		require.NoError(t, pipeline.AddFraming(c))
		if cfg != nil {
			require.NoError(t, pipeline.AddCompression(c, *cfg))
		}
	}
	return p
}

func (p *peer) send(t *testing.T, id int32, body string) {
	require.NoError(t, p.enc.Write(wire.NewBuffer(packet(id, body))))
}

func (p *peer) recv(t *testing.T) string {
	var b, err = p.fr.Next()
	require.NoError(t, err)
	require.NoError(t, p.dec.Read(b))
	return p.got[len(p.got)-1]
}

func packet(id int32, body string) []byte {
	return append(wire.AppendVarInt(nil, id), body...)
}

type seen struct {
	dir  intercept.Direction
	id   int32
	body string
}

type recorder struct {
	mu   sync.Mutex
	seen []seen
	fail int32 // Packet ID which fails observation.
}

func (r *recorder) Observe(p *intercept.PendingPacket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail != 0 && p.PacketID == r.fail {
		return errors.New("rejected")
	}
	r.seen = append(r.seen, seen{p.Direction, p.PacketID, string(p.Buffer().Readable())})
	return nil
}

func startSession(t *testing.T, cfg Config, obs intercept.Observer) (*Session, *peer, *peer, <-chan error) {
	var clientSide, proxyClient = net.Pipe()
	var upstreamSide, proxyUpstream = net.Pipe()

	var s, err = NewSession(cfg, proxyClient, proxyUpstream, obs, wire.NewPooledAllocator())
	require.NoError(t, err)

	var done = make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	return s, newPeer(t, clientSide, cfg.Compression), newPeer(t, upstreamSide, cfg.Compression), done
}

func TestSessionRelaysAndObserves(t *testing.T) {
	var rec = new(recorder)
	var s, client, upstream, done = startSession(t, Config{Version: protocol.V1_12_2}, rec)

	client.send(t, 0x00, "handshake")
	require.Equal(t, string(packet(0x00, "handshake")), upstream.recv(t))
	upstream.send(t, 0x02, "login success")
	require.Equal(t, string(packet(0x02, "login success")), client.recv(t))

	require.Equal(t, []seen{
		{intercept.Inbound, 0x00, "handshake"},
		{intercept.Outbound, 0x02, "login success"},
	}, rec.seen)
	require.Equal(t, intercept.CheckedNoCompression, s.Interception().State())
	require.Equal(t, protocol.V1_12_2, s.Interception().Connection().Version)

	require.NoError(t, client.conn.Close())
	require.NoError(t, <-done)
}

func TestSessionRepairsLateCompression(t *testing.T) {
	var rec = new(recorder)
	var cfg = Config{
		Version:         protocol.V1_16_5,
		Compression:     &testCompression,
		LateCompression: true,
	}
	var s, client, upstream, done = startSession(t, cfg, rec)

	require.Equal(t, []string{
		pipeline.SplitterName,
		pipeline.PrependerName,
		pipeline.InterceptDecoderName,
		pipeline.InterceptEncoderName,
		pipeline.DecompressName,
		pipeline.CompressName,
	}, s.ClientChain().Names())

	client.send(t, 0x10, largeBody)
	require.Equal(t, string(packet(0x10, largeBody)), upstream.recv(t))
	require.Equal(t, intercept.CheckedFixApplied, s.Interception().State())

	upstream.send(t, 0x20, largeBody)
	require.Equal(t, string(packet(0x20, largeBody)), client.recv(t))
	client.send(t, 0x11, "tiny")
	require.Equal(t, string(packet(0x11, "tiny")), upstream.recv(t))

	// Observation was always of uncompressed packets.
	require.Equal(t, []seen{
		{intercept.Inbound, 0x10, largeBody},
		{intercept.Outbound, 0x20, largeBody},
		{intercept.Inbound, 0x11, "tiny"},
	}, rec.seen)

	require.NoError(t, upstream.conn.Close())
	require.NoError(t, <-done)
}

func TestSessionSurvivesObserverFailure(t *testing.T) {
	var rec = &recorder{fail: 0x05}
	var _, client, upstream, done = startSession(t, Config{Version: protocol.V1_18_2}, rec)

	client.send(t, 0x05, "rejected")
	client.send(t, 0x06, "accepted")
	require.Equal(t, string(packet(0x06, "accepted")), upstream.recv(t))

	upstream.send(t, 0x05, "rejected")
	upstream.send(t, 0x07, "accepted")
	require.Equal(t, string(packet(0x07, "accepted")), client.recv(t))

	require.Len(t, rec.seen, 2)
	require.NoError(t, client.conn.Close())
	require.NoError(t, <-done)
}

func TestSessionDropsPacketWithoutID(t *testing.T) {
	var rec = new(recorder)
	var _, client, upstream, done = startSession(t, Config{Version: protocol.V1_18_2}, rec)

	// A well-formed frame, holding a truncated packet ID.
	var _, err = client.conn.Write([]byte{0x01, 0x80})
	require.NoError(t, err)
	client.send(t, 0x01, "next")
	require.Equal(t, string(packet(0x01, "next")), upstream.recv(t))

	require.NoError(t, client.conn.Close())
	require.NoError(t, <-done)
	require.Len(t, rec.seen, 1)
}

func TestProxyServesSessions(t *testing.T) {
	var ln, err = net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var upstreamSide, proxyUpstream = net.Pipe()
	var upstream = newPeer(t, upstreamSide, nil)

	var p = &Proxy{
		Config:   Config{Upstream: "game.example:25565", Version: protocol.V1_16_5},
		Observer: LoggingObserver{},
		Dial: func(_ context.Context, addr string) (net.Conn, error) {
			if addr != "game.example:25565" {
				return nil, errors.Errorf("unexpected address %s", addr)
			}
			return proxyUpstream, nil
		},
	}
	var before = testutil.ToFloat64(metrics.ObservedPacketsTotal.WithLabelValues("inbound", "0x0"))

	var ctx, cancel = context.WithCancel(context.Background())
	var done = make(chan error, 1)
	go func() { done <- p.Serve(ctx, ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	var client = newPeer(t, conn, nil)

	client.send(t, 0x00, "hello")
	require.Equal(t, string(packet(0x00, "hello")), upstream.recv(t))
	upstream.send(t, 0x01, "world")
	require.Equal(t, string(packet(0x01, "world")), client.recv(t))

	require.Equal(t, before+1, testutil.ToFloat64(metrics.ObservedPacketsTotal.WithLabelValues("inbound", "0x0")))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.ProxySessionsActive))

	cancel()
	require.NoError(t, ln.Close())
	require.NoError(t, <-done)
	require.Equal(t, float64(0), testutil.ToFloat64(metrics.ProxySessionsActive))
}
