package intercept

import (
	"fmt"

	"github.com/google/uuid"
)

// ObserverError is returned when an Observer fails or panics on a packet.
// The packet was not forwarded, but the Interception remains usable.
type ObserverError struct {
	Conn      uuid.UUID
	Direction Direction
	PacketID  int32
	Err       error
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("observing %s packet %#x of %s: %s", e.Direction, e.PacketID, e.Conn, e.Err)
}

// Unwrap returns the underlying error.
func (e *ObserverError) Unwrap() error { return e.Err }

// RepairError is returned when the compression order of a connection's
// Chain could not be checked or repaired. The connection must be closed.
type RepairError struct {
	Conn uuid.UUID
	Err  error
}

func (e *RepairError) Error() string {
	return fmt.Sprintf("repairing compression order of %s: %s", e.Conn, e.Err)
}

// Unwrap returns the underlying error.
func (e *RepairError) Unwrap() error { return e.Err }
