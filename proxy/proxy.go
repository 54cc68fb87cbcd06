package proxy

import (
	"context"
	"net"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/intercept"
	"go.packetlens.dev/core/keepalive"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/wire"
)

// Proxy accepts client connections and serves a Session for each.
type Proxy struct {
	Config   Config
	Observer intercept.Observer
	// Dial connects to the game server. If nil, keepalive.DialerFunc is used.
	Dial func(ctx context.Context, addr string) (net.Conn, error)
	// Alloc issues Buffers of all Sessions. If nil, wire.DefaultAllocator is used.
	Alloc wire.Allocator
}

// Serve Sessions of connections accepted from |ln| until it's closed or the
// Context is cancelled. Serve waits for running Sessions to finish.
func (p *Proxy) Serve(ctx context.Context, ln net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		var conn, err = ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil // Graceful stop.
			}
			return errors.WithMessage(err, "accepting connection")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			p.handle(ctx, conn)
		}()
	}
}

func (p *Proxy) handle(ctx context.Context, client net.Conn) {
	var dial = p.Dial
	if dial == nil {
		dial = keepalive.DialerFunc
	}
	var alloc = p.Alloc
	if alloc == nil {
		alloc = wire.DefaultAllocator
	}

	var upstream, err = dial(ctx, p.Config.Upstream)
	if err != nil {
		log.WithFields(log.Fields{
			"client":   client.RemoteAddr(),
			"upstream": p.Config.Upstream,
			"err":      err,
		}).Warn("failed to dial upstream")

		metrics.ProxySessionsTotal.WithLabelValues(metrics.Fail).Inc()
		_ = client.Close()
		return
	}

	session, err := NewSession(p.Config, client, upstream, p.Observer, alloc)
	if err != nil {
		log.WithField("err", err).Error("failed to build session")
		metrics.ProxySessionsTotal.WithLabelValues(metrics.Fail).Inc()
		_ = client.Close()
		_ = upstream.Close()
		return
	}

	log.WithFields(log.Fields{
		"conn":   session.ID,
		"client": client.RemoteAddr(),
		"stages": session.ClientChain().Names(),
	}).Info("session started")

	metrics.ProxySessionsActive.Inc()
	defer metrics.ProxySessionsActive.Dec()

	_ = session.Serve(ctx) // Logged by Serve.
}
