package wire

import (
	"sync"
	"sync/atomic"
)

// Allocator issues Buffers.
type Allocator interface {
	// Allocate returns an empty Buffer with at least |capacity| bytes of
	// capacity and a reference count of one.
	Allocate(capacity int) *Buffer
}

// PooledAllocator is an Allocator which recycles the backing storage of
// released Buffers. It tracks Buffers which are allocated but not yet
// released, which makes it useful for leak detection.
type PooledAllocator struct {
	pool        sync.Pool
	allocated   atomic.Int64
	outstanding atomic.Int64
}

// maxPooledCapacity bounds the capacity of storage returned to the pool,
// so that an occasional large packet doesn't pin memory.
const maxPooledCapacity = 1 << 16

// NewPooledAllocator returns a new PooledAllocator.
func NewPooledAllocator() *PooledAllocator {
	var a = new(PooledAllocator)
	a.pool.New = func() interface{} { return make([]byte, 0, 1024) }
	return a
}

// DefaultAllocator is a process-wide PooledAllocator.
var DefaultAllocator = NewPooledAllocator()

// Allocate implements Allocator.
func (a *PooledAllocator) Allocate(capacity int) *Buffer {
	var b = a.pool.Get().([]byte)
	if cap(b) < capacity {
		b = make([]byte, 0, capacity)
	}
	a.allocated.Add(1)
	a.outstanding.Add(1)

	return &Buffer{b: b[:0], refs: 1, alloc: a}
}

// Allocated returns the total number of Buffers ever allocated.
func (a *PooledAllocator) Allocated() int64 { return a.allocated.Load() }

// Outstanding returns the number of allocated Buffers not yet released.
func (a *PooledAllocator) Outstanding() int64 { return a.outstanding.Load() }

func (a *PooledAllocator) free(b *Buffer) {
	a.outstanding.Add(-1)
	if cap(b.b) <= maxPooledCapacity {
		a.pool.Put(b.b[:0])
	}
}

// Copy returns a new Buffer from |alloc| holding a copy of the readable
// bytes of |b|. The reader index of |b| is not changed.
func Copy(alloc Allocator, b *Buffer) *Buffer {
	var out = alloc.Allocate(b.ReadableBytes())
	out.WriteBytes(b.Readable())
	return out
}
