package wire

import (
	"io"
	"sync/atomic"
)

// Buffer is a read/write cursor over a growable byte slice. Bytes in
// [ReaderIndex, WriterIndex) are readable; writes append at WriterIndex.
//
// Buffers are reference counted. A Buffer is created with a count of one,
// and each Retain must be balanced by a Release. The final Release returns
// pooled storage to its Allocator, after which the Buffer must not be used.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	b     []byte // Backing storage. len(b) is the writer index.
	r     int    // Reader index.
	refs  int32  // Reference count, accessed atomically.
	alloc *PooledAllocator
}

// NewBuffer returns an unpooled Buffer which takes ownership of |b|, with
// all of |b| readable.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b, refs: 1}
}

// ReaderIndex returns the offset of the next byte to be read.
func (b *Buffer) ReaderIndex() int { return b.r }

// SetReaderIndex moves the reader to |i|, which must be within
// [0, WriterIndex].
func (b *Buffer) SetReaderIndex(i int) {
	if i < 0 || i > len(b.b) {
		panic("reader index out of bounds")
	}
	b.r = i
}

// WriterIndex returns the offset at which the next byte will be written.
func (b *Buffer) WriterIndex() int { return len(b.b) }

// SetWriterIndex truncates or zero-extends written content to |i|. The
// reader index is clamped to the new writer index.
func (b *Buffer) SetWriterIndex(i int) {
	if i < 0 {
		panic("writer index out of bounds")
	}
	if i <= len(b.b) {
		b.b = b.b[:i]
	} else {
		b.b = append(b.b, make([]byte, i-len(b.b))...)
	}
	if b.r > i {
		b.r = i
	}
}

// ReadableBytes returns the number of unread bytes.
func (b *Buffer) ReadableBytes() int { return len(b.b) - b.r }

// Readable returns the unread bytes. The returned slice aliases the Buffer
// and is invalidated by the next write or Release.
func (b *Buffer) Readable() []byte { return b.b[b.r:] }

// Bytes returns all written bytes, including those already read. Like
// Readable, it aliases the Buffer.
func (b *Buffer) Bytes() []byte { return b.b }

// Clear resets both the reader and writer indexes to zero, retaining capacity.
func (b *Buffer) Clear() {
	b.b = b.b[:0]
	b.r = 0
}

// SetBytes replaces the Buffer's content with a copy of |p|, and rewinds the reader.
func (b *Buffer) SetBytes(p []byte) {
	b.Clear()
	b.b = append(b.b, p...)
}

// Grow ensures capacity for another |n| bytes without re-allocation.
func (b *Buffer) Grow(n int) {
	if cap(b.b)-len(b.b) < n {
		var nb = make([]byte, len(b.b), 2*cap(b.b)+n)
		copy(nb, b.b)
		b.b = nb
	}
}

// Write appends |p|. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteBytes appends |p|.
func (b *Buffer) WriteBytes(p []byte) { b.b = append(b.b, p...) }

// WriteByte appends |c|. It implements io.ByteWriter and never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.b = append(b.b, c)
	return nil
}

// Read implements io.Reader over the unread bytes.
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	} else if b.r == len(b.b) {
		return 0, io.EOF
	}
	var n = copy(p, b.b[b.r:])
	b.r += n
	return n, nil
}

// ReadByte implements io.ByteReader. It returns ErrTruncated if no bytes remain.
func (b *Buffer) ReadByte() (byte, error) {
	if b.r == len(b.b) {
		return 0, ErrTruncated
	}
	var c = b.b[b.r]
	b.r++
	return c, nil
}

// ReadBytes returns a copy of the next |n| bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	var p, err = b.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), p...), nil
}

// Skip advances the reader by |n| bytes.
func (b *Buffer) Skip(n int) error {
	var _, err = b.next(n)
	return err
}

// next returns the next |n| bytes without copying, and advances the reader.
func (b *Buffer) next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	} else if n > len(b.b)-b.r {
		return nil, ErrTruncated
	}
	var p = b.b[b.r : b.r+n]
	b.r += n
	return p, nil
}

// RefCount returns the current reference count.
func (b *Buffer) RefCount() int32 { return atomic.LoadInt32(&b.refs) }

// Retain increments the reference count, and returns the Buffer.
func (b *Buffer) Retain() *Buffer {
	if atomic.AddInt32(&b.refs, 1) <= 1 {
		panic(ErrIllegalRefCount)
	}
	return b
}

// Release decrements the reference count, returning true if this released
// the final reference. Releasing a Buffer which has no references panics.
func (b *Buffer) Release() bool {
	switch n := atomic.AddInt32(&b.refs, -1); {
	case n > 0:
		return false
	case n < 0:
		panic(ErrIllegalRefCount)
	}
	if b.alloc != nil {
		b.alloc.free(b)
	}
	b.b, b.r = nil, 0
	return true
}
