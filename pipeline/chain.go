package pipeline

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/wire"
)

// Stage is an element of a Chain. It's an Encoder, a Decoder, or both.
type Stage interface{}

// Encoder is a Stage which transforms outbound buffers. Encode takes
// ownership of |in|. It returns a buffer to pass to the next Stage toward
// the network (which may be |in| itself), or nil to drop the packet. On
// error, Encode must have released |in|.
type Encoder interface {
	Encode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error)
}

// Decoder is a Stage which transforms inbound buffers. It has the same
// ownership semantics as Encoder.
type Decoder interface {
	Decode(ctx *Context, in *wire.Buffer) (*wire.Buffer, error)
}

// Sink receives and takes ownership of buffers which have passed through
// every Stage of a Chain.
type Sink func(*wire.Buffer) error

// ErrorHandler is notified of errors returned by Stages and Sinks.
type ErrorHandler func(err error)

// Standard Stage names.
const (
	SplitterName         = "splitter"
	PrependerName        = "prepender"
	DecompressName       = "decompress"
	CompressName         = "compress"
	InterceptDecoderName = "packetlens-decoder"
	InterceptEncoderName = "packetlens-encoder"
)

var (
	// ErrNoSuchStage is returned when a named Stage is not in the Chain.
	ErrNoSuchStage = errors.New("no such stage")
	// ErrDuplicateStage is returned when adding a Stage whose name is taken.
	ErrDuplicateStage = errors.New("duplicate stage name")
)

// Chain is the ordered sequence of named Stages which process the packets
// of one connection. Stages are ordered from the head (nearest the network)
// to the tail (nearest the application). Outbound buffers enter at the tail
// with Write and travel toward the head, and inbound buffers enter at the
// head with Read and travel toward the tail.
//
// Chains may be restructured at any time, including by a Stage which is
// processing a packet. Each Write or Read runs over the Stages present as
// of its start, so a restructure takes effect with the next packet.
type Chain struct {
	alloc    wire.Allocator
	outbound Sink
	inbound  Sink

	mu      sync.Mutex // Serializes restructures.
	stages  atomic.Pointer[[]entry]
	onError atomic.Pointer[ErrorHandler]
}

type entry struct {
	name  string
	stage Stage
}

// NewChain returns an empty Chain which allocates from |alloc|, passes
// outbound buffers leaving its head to |outbound|, and passes inbound
// buffers leaving its tail to |inbound|.
func NewChain(alloc wire.Allocator, outbound, inbound Sink) *Chain {
	var c = &Chain{alloc: alloc, outbound: outbound, inbound: inbound}
	c.stages.Store(new([]entry))
	c.SetErrorHandler(logError)
	return c
}

// Allocator of the Chain.
func (c *Chain) Allocator() wire.Allocator { return c.alloc }

// SetErrorHandler replaces the Chain's ErrorHandler. By default, errors are logged.
func (c *Chain) SetErrorHandler(h ErrorHandler) { c.onError.Store(&h) }

func logError(err error) {
	log.WithField("err", err).Warn("pipeline error")
}

// AddFirst adds the Stage at the head of the Chain.
func (c *Chain) AddFirst(name string, stage Stage) error {
	return c.insert(name, stage, func([]entry) (int, error) { return 0, nil })
}

// AddLast adds the Stage at the tail of the Chain.
func (c *Chain) AddLast(name string, stage Stage) error {
	return c.insert(name, stage, func(s []entry) (int, error) { return len(s), nil })
}

// AddBefore adds the Stage immediately head-ward of Stage |base|.
func (c *Chain) AddBefore(base, name string, stage Stage) error {
	return c.insert(name, stage, func(s []entry) (int, error) {
		if ind := indexOf(s, base); ind != -1 {
			return ind, nil
		}
		return 0, errors.WithMessage(ErrNoSuchStage, base)
	})
}

// AddAfter adds the Stage immediately tail-ward of Stage |base|.
func (c *Chain) AddAfter(base, name string, stage Stage) error {
	return c.insert(name, stage, func(s []entry) (int, error) {
		if ind := indexOf(s, base); ind != -1 {
			return ind + 1, nil
		}
		return 0, errors.WithMessage(ErrNoSuchStage, base)
	})
}

func (c *Chain) insert(name string, stage Stage, at func([]entry) (int, error)) error {
	if err := protocol.ValidateToken(name, 1, 64); err != nil {
		return protocol.ExtendContext(err, "name")
	}
	switch stage.(type) {
	case Encoder, Decoder:
	default:
		return errors.Errorf("stage %s is neither an Encoder nor a Decoder", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var cur = *c.stages.Load()
	if indexOf(cur, name) != -1 {
		return errors.WithMessage(ErrDuplicateStage, name)
	}
	var ind, err = at(cur)
	if err != nil {
		return err
	}
	var next = make([]entry, 0, len(cur)+1)
	next = append(next, cur[:ind]...)
	next = append(next, entry{name: name, stage: stage})
	next = append(next, cur[ind:]...)

	c.stages.Store(&next)
	return nil
}

// Remove the named Stage, returning it.
func (c *Chain) Remove(name string) (Stage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var cur = *c.stages.Load()
	var ind = indexOf(cur, name)
	if ind == -1 {
		return nil, errors.WithMessage(ErrNoSuchStage, name)
	}
	var next = make([]entry, 0, len(cur)-1)
	next = append(next, cur[:ind]...)
	next = append(next, cur[ind+1:]...)

	c.stages.Store(&next)
	return cur[ind].stage, nil
}

// MoveAfter repositions Stage |name| immediately tail-ward of Stage |base|.
func (c *Chain) MoveAfter(name, base string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var cur = *c.stages.Load()
	var from = indexOf(cur, name)
	if from == -1 {
		return errors.WithMessage(ErrNoSuchStage, name)
	} else if name == base {
		return errors.Errorf("cannot move %s after itself", name)
	}
	var moved = cur[from]

	var next = make([]entry, 0, len(cur))
	next = append(next, cur[:from]...)
	next = append(next, cur[from+1:]...)

	var to = indexOf(next, base)
	if to == -1 {
		return errors.WithMessage(ErrNoSuchStage, base)
	}
	next = append(next[:to+1], append([]entry{moved}, next[to+1:]...)...)

	c.stages.Store(&next)
	return nil
}

// Get returns the named Stage, or nil if it's not in the Chain.
func (c *Chain) Get(name string) Stage {
	var cur = *c.stages.Load()
	if ind := indexOf(cur, name); ind != -1 {
		return cur[ind].stage
	}
	return nil
}

// IndexOf returns the position of the named Stage, counting from zero at
// the head, or -1 if it's not in the Chain.
func (c *Chain) IndexOf(name string) int { return indexOf(*c.stages.Load(), name) }

// Names returns the names of all Stages, from head to tail.
func (c *Chain) Names() []string {
	var cur = *c.stages.Load()
	var out = make([]string, len(cur))
	for i, e := range cur {
		out[i] = e.name
	}
	return out
}

// Context returns the Context of the named Stage, positioned within the
// current structure of the Chain.
func (c *Chain) Context(name string) *Context {
	var cur = *c.stages.Load()
	return &Context{chain: c, stages: cur, index: indexOf(cur, name), name: name}
}

// Write passes outbound buffer |b| through Encoders from tail to head, and
// then to the outbound Sink. Write takes ownership of |b|.
func (c *Chain) Write(b *wire.Buffer) error {
	var snapshot = *c.stages.Load()

	for i := len(snapshot) - 1; i >= 0; i-- {
		var enc, ok = snapshot[i].stage.(Encoder)
		if !ok {
			continue
		}
		var err error
		var ctx = &Context{chain: c, stages: snapshot, index: i, name: snapshot[i].name}
		if b, err = enc.Encode(ctx, b); err != nil {
			return c.fail(errors.WithMessagef(err, "encoding at %s", snapshot[i].name))
		} else if b == nil {
			return nil // Dropped.
		}
	}
	if err := c.outbound(b); err != nil {
		return c.fail(errors.WithMessage(err, "outbound sink"))
	}
	return nil
}

// Read passes inbound buffer |b| through Decoders from head to tail, and
// then to the inbound Sink. Read takes ownership of |b|.
func (c *Chain) Read(b *wire.Buffer) error {
	var snapshot = *c.stages.Load()

	for i := 0; i != len(snapshot); i++ {
		var dec, ok = snapshot[i].stage.(Decoder)
		if !ok {
			continue
		}
		var err error
		var ctx = &Context{chain: c, stages: snapshot, index: i, name: snapshot[i].name}
		if b, err = dec.Decode(ctx, b); err != nil {
			return c.fail(errors.WithMessagef(err, "decoding at %s", snapshot[i].name))
		} else if b == nil {
			return nil // Dropped.
		}
	}
	if err := c.inbound(b); err != nil {
		return c.fail(errors.WithMessage(err, "inbound sink"))
	}
	return nil
}

func (c *Chain) fail(err error) error {
	(*c.onError.Load())(err)
	return err
}

func indexOf(s []entry, name string) int {
	for i, e := range s {
		if e.name == name {
			return i
		}
	}
	return -1
}

// Context is passed to a Stage invocation. It captures the structure of
// the Chain as seen by the Write or Read being run, which may be stale
// with respect to concurrent restructures.
type Context struct {
	chain  *Chain
	stages []entry
	index  int
	name   string
}

// Chain of the invoked Stage.
func (ctx *Context) Chain() *Chain { return ctx.chain }

// Name of the invoked Stage.
func (ctx *Context) Name() string { return ctx.name }

// Index of the invoked Stage within the structure being run, or -1 if
// the Stage isn't part of it.
func (ctx *Context) Index() int { return ctx.index }

// IndexOf returns the index of the named Stage within the structure being
// run, or -1 if it isn't present.
func (ctx *Context) IndexOf(name string) int { return indexOf(ctx.stages, name) }

// Allocator of the Chain.
func (ctx *Context) Allocator() wire.Allocator { return ctx.chain.alloc }
