package proxy

import (
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/intercept"
	"go.packetlens.dev/core/metrics"
)

// LoggingObserver is an intercept.Observer which logs and counts packets,
// and forwards them unmodified.
type LoggingObserver struct{}

// Observe implements intercept.Observer.
func (LoggingObserver) Observe(p *intercept.PendingPacket) error {
	var id = fmt.Sprintf("%#x", p.PacketID)
	metrics.ObservedPacketsTotal.WithLabelValues(p.Direction.String(), id).Inc()

	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{
			"conn":      p.ConnID,
			"direction": p.Direction,
			"id":        id,
			"size":      humanize.Bytes(uint64(p.Buffer().ReadableBytes())),
		}).Debug("observed packet")
	}
	return nil
}
