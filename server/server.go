// Package server binds a TCP socket which serves both game connections and
// HTTP diagnostics, multiplexed by sniffing the first bytes of each connection.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/soheilhy/cmux"
	"go.packetlens.dev/core/keepalive"
	"go.packetlens.dev/core/task"
)

// Server bundles game and HTTP listeners, multiplexed over a single bound
// TCP socket (using CMux).
type Server struct {
	// RawListener is the bound TCP listener of the Server.
	RawListener *net.TCPListener
	// CMux wraps RawListener to provide connection protocol multiplexing over
	// a single bound socket.
	CMux cmux.CMux
	// HTTPListener is a CMux Listener for HTTP connections.
	HTTPListener net.Listener
	// GameListener is a CMux Listener for all other connections.
	GameListener net.Listener
	// HTTPMux is the http.ServeMux which is served by QueueTasks.
	HTTPMux *http.ServeMux
	// Ctx is cancelled when the Server is stopped.
	Ctx context.Context

	cancel context.CancelFunc
}

// New builds and returns a Server bound to |addr|, which may have a zero
// port to select a random free port.
func New(addr string) (*Server, error) {
	var raw, err = net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to bind service address (%s)", addr)
	}
	var ctx, cancel = context.WithCancel(context.Background())

	var srv = &Server{
		HTTPMux:     http.DefaultServeMux,
		RawListener: raw.(*net.TCPListener),
		Ctx:         ctx,
		cancel:      cancel,
	}
	srv.CMux = cmux.New(keepalive.TCPListener{TCPListener: srv.RawListener})

	srv.CMux.HandleError(func(err error) bool {
		if _, ok := err.(net.Error); !ok {
			log.WithField("err", err).Warn("failed to CMux client connection to a listener")
		}
		return true // Continue serving RawListener.
	})

	// Connections sending HTTP/1 verbs (GET, PUT, POST etc) are assumed to be HTTP.
	// Game connections begin with a VarInt-prefixed handshake, which never does.
	// Matching reads up to seven bytes before deciding; handshakes are longer.
	srv.HTTPListener = srv.CMux.Match(cmux.HTTP1Fast())
	srv.GameListener = srv.CMux.Match(cmux.Any())

	return srv, nil
}

// Endpoint of the Server.
func (s *Server) Endpoint() string { return s.RawListener.Addr().String() }

// QueueTasks serving the CMux and HTTP component servers onto the task.Group.
// The Server is stopped when the task.Group is cancelled. Attempts to Accept
// from GameListener block until the CMux itself begins serving.
func (s *Server) QueueTasks(tg *task.Group) {
	tg.Queue("CMux.Serve", func() error {
		if err := s.CMux.Serve(); err != nil && s.Ctx.Err() == nil {
			return err
		}
		return nil // Swallow error after stop.
	})
	tg.Queue("http.Serve", func() error {
		if err := http.Serve(s.HTTPListener, s.HTTPMux); err != nil && s.Ctx.Err() == nil {
			return err
		}
		return nil // Swallow error after stop.
	})
	tg.Queue("Server.Stop", func() error {
		<-tg.Context().Done() // Block until task.Group is cancelled.

		// Cancel |s.Ctx| so Serve loops recognize this as a graceful closure.
		s.cancel()
		return s.RawListener.Close()
	})
}
