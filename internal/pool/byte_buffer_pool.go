// Package pool provides a byte-buffer arena used by BOS-M's encode path,
// so repeated StreamCodec.Encode calls over many columns don't each pay
// for a fresh worst-case-sized scratch buffer.
package pool

import "sync"

const (
	// DefaultBufferSize covers a single block at block sizes 64..1024
	// without growing; a 2048-value block's worst-case bound is larger.
	DefaultBufferSize = 1024 * 16
	// MaxRetainedSize discards buffers grown past this on Put, so one
	// unusually large stream doesn't permanently bloat the pool.
	MaxRetainedSize = 1024 * 1024 * 4
)

// ByteBuffer is a growable byte slice meant to be reused via ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int { return len(bb.B) }
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Grow ensures the buffer can hold requiredBytes more without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}
	growBy := DefaultBufferSize
	if cap(bb.B) > 4*DefaultBufferSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}
	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if there isn't enough spare capacity.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	bb.Grow(n)
	bb.B = bb.B[:len(bb.B)+n]
}

// ByteBufferPool pools ByteBuffers to avoid re-allocating BOS-M's per-call
// scratch buffer on every StreamCodec.Encode invocation.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultBufferSize, MaxRetainedSize)

// Get retrieves a ByteBuffer from the package-level default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns bb to the package-level default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
