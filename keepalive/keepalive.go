// Package keepalive provides TCP listeners and dialers which enable
// keep-alive probes, so that dead peers of long-lived game connections
// are eventually detected.
package keepalive

import (
	"context"
	"net"
	"time"
)

// Dialer is modeled on the invocation in http.DefaultTransport.
var Dialer = &net.Dialer{
	Timeout:   30 * time.Second,
	KeepAlive: 30 * time.Second,
}

// DialerFunc dials TCP |addr| with |ctx|.
func DialerFunc(ctx context.Context, addr string) (net.Conn, error) {
	var conn, err = Dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}
	return conn, nil
}

// DefaultPeriod is the keep-alive period of accepted connections.
const DefaultPeriod = 3 * time.Minute

// TCPListener sets TCP keep-alive timeouts on accepted connections, and
// disables Nagle's algorithm as packets are small and latency sensitive.
type TCPListener struct {
	*net.TCPListener
	// Period between keep-alive probes. If zero, DefaultPeriod is used.
	Period time.Duration
}

// Accept implements net.Listener.
func (ln TCPListener) Accept() (net.Conn, error) {
	var tc, err = ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	var period = ln.Period
	if period == 0 {
		period = DefaultPeriod
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(period)
	_ = tc.SetNoDelay(true)
	return tc, nil
}
