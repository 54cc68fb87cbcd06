package intercept

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/pipeline"
	"go.packetlens.dev/core/wire"
)

// CheckState is the state of an Interception's compression order check.
type CheckState int32

const (
	// Unchecked Interceptions will check compression order on their next packet.
	Unchecked CheckState = iota
	// CheckedNoCompression Interceptions found compression absent, or
	// already ordered correctly.
	CheckedNoCompression
	// CheckedFixApplied Interceptions found compression misordered, and
	// repaired the Chain.
	CheckedFixApplied
)

func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "Unchecked"
	case CheckedNoCompression:
		return "CheckedNoCompression"
	case CheckedFixApplied:
		return "CheckedFixApplied"
	}
	return fmt.Sprintf("CheckState(%d)", int32(s))
}

// Interception observes the packets of one connection. It's installed into
// the connection's Chain as an Encoder and a Decoder, which share its state.
//
// Observers must see packets without compression. Interception expects to
// sit tail-ward of the compress and decompress Stages, but hosts may enable
// compression after Interception is installed, placing those Stages on the
// wrong side. The first packet through either direction checks the order.
// If it's wrong, the Chain is re-ordered so that later packets arrive
// uncompressed. Packets already in flight over the prior order are
// decompressed for observation and recompressed after.
type Interception struct {
	conn     Connection
	observer Observer

	mu    sync.Mutex
	state CheckState
}

// Encoder is the outbound Stage of an Interception.
type Encoder struct{ *Interception }

// Decoder is the inbound Stage of an Interception.
type Decoder struct{ *Interception }

// Install an Interception of |conn| with |observer| at the tail of |chain|.
func Install(chain *pipeline.Chain, conn Connection, observer Observer) (*Interception, error) {
	var ic = &Interception{conn: conn, observer: observer}

	if err := chain.AddLast(pipeline.InterceptDecoderName, Decoder{ic}); err != nil {
		return nil, err
	} else if err = chain.AddLast(pipeline.InterceptEncoderName, Encoder{ic}); err != nil {
		_, _ = chain.Remove(pipeline.InterceptDecoderName)
		return nil, err
	}
	return ic, nil
}

// Connection of the Interception.
func (ic *Interception) Connection() Connection { return ic.conn }

// State returns the current CheckState.
func (ic *Interception) State() CheckState {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.state
}

// Encode implements pipeline.Encoder.
func (e Encoder) Encode(ctx *pipeline.Context, in *wire.Buffer) (*wire.Buffer, error) {
	return e.intercept(ctx, Outbound, in)
}

// Decode implements pipeline.Decoder.
func (d Decoder) Decode(ctx *pipeline.Context, in *wire.Buffer) (*wire.Buffer, error) {
	return d.intercept(ctx, Inbound, in)
}

func (ic *Interception) intercept(ctx *pipeline.Context, dir Direction, in *wire.Buffer) (*wire.Buffer, error) {
	var chain = ctx.Chain()
	var work = wire.Copy(ctx.Allocator(), in)
	in.Release()

	state, err := ic.check(chain)
	if err != nil {
		work.Release()
		return nil, err
	}
	// Packets run over the Chain structure current when they were written
	// or read. A packet in flight across a repair still sees the misorder.
	var compressed = state == CheckedFixApplied && arrivesCompressed(ctx, dir)

	if compressed {
		if work, err = ic.runStage(chain, pipeline.DecompressName, work); err != nil {
			return nil, err
		}
	}

	if work, err = ic.observe(dir, work); err != nil || work == nil {
		return nil, err
	}

	if compressed {
		if work, err = ic.runStage(chain, pipeline.CompressName, work); err != nil {
			return nil, err
		}
	}
	return work, nil
}

// arrivesCompressed returns whether the packet of |dir| being run by |ctx|
// reaches our Stage compressed. Stages tail-ward of ours see outbound
// packets before us, and inbound packets after.
func arrivesCompressed(ctx *pipeline.Context, dir Direction) bool {
	if dir == Outbound {
		return ctx.IndexOf(pipeline.CompressName) > ctx.Index()
	}
	return ctx.IndexOf(pipeline.DecompressName) > ctx.Index()
}

// check the compression order of |chain| if it hasn't been checked yet,
// repairing it if required. It returns the resulting CheckState.
func (ic *Interception) check(chain *pipeline.Chain) (CheckState, error) {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	if ic.state != Unchecked {
		return ic.state, nil
	}

	var (
		compress   = chain.IndexOf(pipeline.CompressName)
		decompress = chain.IndexOf(pipeline.DecompressName)
		outbound   = compress != -1 && compress > chain.IndexOf(pipeline.InterceptEncoderName)
		inbound    = decompress != -1 && decompress > chain.IndexOf(pipeline.InterceptDecoderName)
	)
	if !outbound && !inbound {
		ic.state = CheckedNoCompression
		metrics.CompressionChecksTotal.WithLabelValues(metrics.NoRepair).Inc()
		return ic.state, nil
	}

	var err = ic.repair(chain, outbound, inbound)
	if err != nil {
		metrics.StructuralRepairsTotal.WithLabelValues(metrics.Fail).Inc()
		log.WithFields(log.Fields{
			"conn": ic.conn.ID,
			"err":  err,
		}).Error("failed to repair compression order")

		return ic.state, &RepairError{Conn: ic.conn.ID, Err: err}
	}

	ic.state = CheckedFixApplied
	metrics.CompressionChecksTotal.WithLabelValues(metrics.Repaired).Inc()
	metrics.StructuralRepairsTotal.WithLabelValues(metrics.Ok).Inc()

	log.WithFields(log.Fields{
		"conn":     ic.conn.ID,
		"outbound": outbound,
		"inbound":  inbound,
		"stages":   chain.Names(),
	}).Info("repaired compression order")

	return ic.state, nil
}

func (ic *Interception) repair(chain *pipeline.Chain, outbound, inbound bool) error {
	// Both compression Stages are needed to process the current packet.
	if _, ok := chain.Get(pipeline.CompressName).(pipeline.Encoder); !ok {
		return errors.Errorf("stage %s is not an Encoder", pipeline.CompressName)
	} else if _, ok = chain.Get(pipeline.DecompressName).(pipeline.Decoder); !ok {
		return errors.Errorf("stage %s is not a Decoder", pipeline.DecompressName)
	}
	if outbound {
		if err := chain.MoveAfter(pipeline.InterceptEncoderName, pipeline.CompressName); err != nil {
			return err
		}
	}
	if inbound {
		if err := chain.MoveAfter(pipeline.InterceptDecoderName, pipeline.DecompressName); err != nil {
			return err
		}
	}
	return nil
}

// runStage passes |work| through the named compression Stage.
func (ic *Interception) runStage(chain *pipeline.Chain, name string, work *wire.Buffer) (*wire.Buffer, error) {
	var out *wire.Buffer
	var err error

	switch stage := chain.Get(name).(type) {
	case pipeline.Encoder:
		out, err = stage.Encode(chain.Context(name), work)
	case pipeline.Decoder:
		out, err = stage.Decode(chain.Context(name), work)
	default:
		work.Release()
		err = errors.Errorf("stage %s not found", name)
	}
	if err == nil && out == nil {
		err = errors.Errorf("stage %s dropped the packet", name)
	}
	if err != nil {
		return nil, &RepairError{Conn: ic.conn.ID, Err: errors.WithMessage(err, name)}
	}
	return out, nil
}

// observe presents |work| to the Observer. It returns the Buffer to forward,
// or nil if the packet was cancelled.
func (ic *Interception) observe(dir Direction, work *wire.Buffer) (out *wire.Buffer, err error) {
	var labels = dir.String()
	var packet *PendingPacket

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("observer panic: %v", r)
		}
		if err == nil {
			return
		}
		var id int32 = -1
		if packet != nil {
			id = packet.PacketID
		}
		work.Release()
		out, err = nil, &ObserverError{Conn: ic.conn.ID, Direction: dir, PacketID: id, Err: err}

		metrics.ObserverFailuresTotal.WithLabelValues(labels).Inc()
	}()

	var start = work.ReaderIndex()
	if packet, err = newPendingPacket(&ic.conn, dir, work); err != nil {
		return nil, errors.WithMessage(err, "reading packet ID")
	}

	metrics.InterceptedPacketsTotal.WithLabelValues(labels).Inc()
	metrics.InterceptedBytesTotal.WithLabelValues(labels).Add(float64(work.WriterIndex() - start))

	if err = ic.observer.Observe(packet); err != nil {
		return nil, err
	}
	packet.Complete()

	if packet.cancelled {
		work.Release()
		metrics.DroppedPacketsTotal.WithLabelValues(labels).Inc()
		return nil, nil
	}
	work.SetReaderIndex(start)
	return work, nil
}
