package proxy

import (
	"context"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/intercept"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/pipeline"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
	"golang.org/x/sync/errgroup"
)

// Config of proxied Sessions.
type Config struct {
	// Upstream is the address of the game server.
	Upstream string
	// Version of the protocol spoken by clients and the game server.
	Version protocol.Version
	// Compression of both connections, or nil if packets are uncompressed.
	Compression *pipeline.Compression
	// LateCompression installs client-facing compression Stages after the
	// Interception, as a host which enables compression mid-connection would.
	LateCompression bool
}

// Session relays packets between a client and the game server. Packets of
// the client connection are presented to an Observer.
//
// Each connection has a Chain. A packet read from the client passes up the
// client Chain, and then down the upstream Chain to the game server. A
// packet read from the game server passes up the upstream Chain, and then
// down the client Chain, where it's observed as outbound.
type Session struct {
	ID uuid.UUID

	client, upstream net.Conn
	clientChain      *pipeline.Chain
	upstreamChain    *pipeline.Chain
	interception     *intercept.Interception

	inboundBytes, outboundBytes atomic.Int64
}

// NewSession returns a Session relaying between |client| and |upstream|.
func NewSession(cfg Config, client, upstream net.Conn, observer intercept.Observer, alloc wire.Allocator) (*Session, error) {
	var s = &Session{
		ID:       uuid.New(),
		client:   client,
		upstream: upstream,
	}
	s.clientChain = pipeline.NewChain(alloc, writeTo(client), s.toUpstream)
	s.upstreamChain = pipeline.NewChain(alloc, writeTo(upstream), s.toClient)

	s.clientChain.SetErrorHandler(s.onClientError)
	// Errors of the upstream Chain end the Session, and are logged then.
	s.upstreamChain.SetErrorHandler(func(error) {})

	var err error
	if err = pipeline.AddFraming(s.clientChain); err != nil {
		return nil, err
	} else if err = pipeline.AddFraming(s.upstreamChain); err != nil {
		return nil, err
	}

	if cfg.Compression != nil {
		if err = pipeline.AddCompression(s.upstreamChain, *cfg.Compression); err != nil {
			return nil, err
		}
		if !cfg.LateCompression {
			err = pipeline.AddCompression(s.clientChain, *cfg.Compression)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.interception, err = intercept.Install(s.clientChain, intercept.Connection{
		ID:       s.ID,
		Version:  cfg.Version,
		Endpoint: s,
	}, observer); err != nil {
		return nil, err
	}

	if cfg.Compression != nil && cfg.LateCompression {
		if err = pipeline.AppendCompression(s.clientChain, *cfg.Compression); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Interception of the client connection.
func (s *Session) Interception() *intercept.Interception { return s.interception }

// ClientChain returns the Chain of the client connection.
func (s *Session) ClientChain() *pipeline.Chain { return s.clientChain }

// RemoteAddr returns the address of the client.
func (s *Session) RemoteAddr() net.Addr { return s.client.RemoteAddr() }

// Serve relays packets until either connection closes, an unrecoverable
// error occurs, or the Context is cancelled. Both connections are closed
// before Serve returns.
func (s *Session) Serve(ctx context.Context) error {
	var started = time.Now()
	var cancel context.CancelFunc
	ctx, cancel = context.WithCancel(ctx)
	defer cancel()

	var closeOnce sync.Once
	var closeAll = func() {
		closeOnce.Do(func() {
			_ = s.client.Close()
			_ = s.upstream.Close()
		})
	}

	var eg errgroup.Group
	eg.Go(func() error {
		defer cancel()
		return s.relay(ctx, s.client, s.clientChain, &s.inboundBytes)
	})
	eg.Go(func() error {
		defer cancel()
		return s.relay(ctx, s.upstream, s.upstreamChain, &s.outboundBytes)
	})
	eg.Go(func() error {
		<-ctx.Done()
		closeAll()
		return nil
	})
	var err = eg.Wait()

	var fields = log.Fields{
		"conn":     s.ID,
		"client":   s.client.RemoteAddr(),
		"inbound":  humanize.Bytes(uint64(s.inboundBytes.Load())),
		"outbound": humanize.Bytes(uint64(s.outboundBytes.Load())),
		"duration": time.Since(started).Round(time.Millisecond),
		"state":    s.interception.State(),
	}
	if err != nil {
		fields["err"] = err
		log.WithFields(fields).Warn("session failed")
		metrics.ProxySessionsTotal.WithLabelValues(metrics.Fail).Inc()
	} else {
		log.WithFields(fields).Info("session ended")
		metrics.ProxySessionsTotal.WithLabelValues(metrics.Ok).Inc()
	}
	return err
}

// relay reads frames of |conn| into |chain| until |conn| is closed.
func (s *Session) relay(ctx context.Context, conn net.Conn, chain *pipeline.Chain, counter *atomic.Int64) error {
	var fr = pipeline.NewFrameReader(conn, chain.Allocator())
	var direction = metrics.Inbound
	if chain == s.upstreamChain {
		direction = metrics.Outbound
	}

	for {
		var b, err = fr.Next()
		if err == io.EOF || ctx.Err() != nil {
			if b != nil {
				b.Release()
			}
			return nil
		} else if err != nil {
			return errors.WithMessage(err, "reading frame")
		}

		var n = b.ReadableBytes()
		counter.Add(int64(n))
		metrics.ProxyRelayedBytesTotal.WithLabelValues(direction).Add(float64(n))

		if err = chain.Read(b); err == nil {
			continue
		}
		var oe *intercept.ObserverError
		if errors.As(err, &oe) {
			continue // Packet dropped. Already logged.
		}
		return err
	}
}

func writeTo(conn net.Conn) pipeline.Sink {
	return func(b *wire.Buffer) error {
		defer b.Release()
		var _, err = conn.Write(b.Readable())
		return err
	}
}

func (s *Session) toUpstream(b *wire.Buffer) error { return s.upstreamChain.Write(b) }
func (s *Session) toClient(b *wire.Buffer) error   { return s.clientChain.Write(b) }

func (s *Session) onClientError(err error) {
	var fields = log.Fields{"conn": s.ID, "err": err}

	var oe *intercept.ObserverError
	var re *intercept.RepairError

	if errors.As(err, &oe) {
		fields["direction"] = oe.Direction
		log.WithFields(fields).Warn("observer failed; dropped packet")
	} else if errors.As(err, &re) {
		log.WithFields(fields).Error("failed to repair pipeline; closing connection")
	} else {
		log.WithFields(fields).Debug("client pipeline error")
	}
}
