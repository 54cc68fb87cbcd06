package intercept

import (
	"fmt"

	"github.com/google/uuid"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
)

// Direction of a packet relative to the local side of the connection.
type Direction int

const (
	// Inbound packets were received from the network.
	Inbound Direction = iota
	// Outbound packets are being sent to the network.
	Outbound
)

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Connection identifies the connection an Interception serves.
type Connection struct {
	// ID of the connection.
	ID uuid.UUID
	// Version of the protocol spoken by the connection.
	Version protocol.Version
	// Endpoint is an opaque handle of the connection's session or user,
	// passed through to Observers.
	Endpoint interface{}
}

// PendingPacket is a decoded, mutable view of a packet presented to an
// Observer. It's valid only for the duration of the Observe call.
//
// On construction the packet ID is read from the front of the packet,
// leaving the reader at the start of the packet body. Observers may read
// and rewrite the Buffer freely: after Observe returns, the reader is
// returned to the start of the packet and its content is forwarded.
type PendingPacket struct {
	Direction Direction
	ConnID    uuid.UUID
	Version   protocol.Version
	Endpoint  interface{}
	PacketID  int32

	buf       *wire.Buffer
	a, b      int
	completed bool
	cancelled bool
}

func newPendingPacket(conn *Connection, dir Direction, buf *wire.Buffer) (*PendingPacket, error) {
	var p = &PendingPacket{
		Direction: dir,
		ConnID:    conn.ID,
		Version:   conn.Version,
		Endpoint:  conn.Endpoint,
		buf:       buf,
		a:         buf.ReaderIndex(),
	}
	var err error
	if p.PacketID, err = buf.ReadVarInt(); err != nil {
		return nil, err
	}
	p.b = buf.ReaderIndex()
	return p, nil
}

// Buffer returns the packet's working Buffer.
func (p *PendingPacket) Buffer() *wire.Buffer { return p.buf }

// Bookmarks returns the reader index at the start of the packet, and at
// the start of its body.
func (p *PendingPacket) Bookmarks() (start, body int) { return p.a, p.b }

// Replace the packet body with |body|, retaining the packet ID. The reader
// is placed at the start of the new body.
func (p *PendingPacket) Replace(body []byte) {
	p.buf.SetWriterIndex(p.b)
	p.buf.WriteBytes(body)
	p.buf.SetReaderIndex(p.b)
}

// Cancel the packet, which is dropped rather than forwarded.
func (p *PendingPacket) Cancel() { p.cancelled = true }

// Cancelled returns whether Cancel was called.
func (p *PendingPacket) Cancelled() bool { return p.cancelled }

// Completed returns whether Complete was called.
func (p *PendingPacket) Completed() bool { return p.completed }

// Complete returns the reader to the start of the packet body, as it was
// when the PendingPacket was constructed. Only the first call has effect.
// Observers needn't call it: it's called once Observe returns.
func (p *PendingPacket) Complete() {
	if p.completed {
		return
	}
	p.completed = true

	if p.b <= p.buf.WriterIndex() {
		p.buf.SetReaderIndex(p.b)
	} else {
		p.buf.SetReaderIndex(p.buf.WriterIndex())
	}
}

func (p *PendingPacket) String() string {
	return fmt.Sprintf("%s packet %#x of %s (%d bytes)",
		p.Direction, p.PacketID, p.ConnID, p.buf.WriterIndex()-p.a)
}

// Observer is notified of each intercepted packet. Observe is called
// synchronously from the connection's pipeline, and may inspect, rewrite,
// or cancel the packet. A returned error or panic drops the packet.
type Observer interface {
	Observe(*PendingPacket) error
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(*PendingPacket) error

// Observe implements Observer.
func (fn ObserverFunc) Observe(p *PendingPacket) error { return fn(p) }
