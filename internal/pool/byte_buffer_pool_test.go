package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Zero(t, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBufferGrowNoReallocWhenCapacitySuffices(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.B = bb.B[:10]
	ptr := &bb.B[0]

	bb.Grow(20)

	assert.Same(t, ptr, &bb.B[0], "Grow must not reallocate when capacity already suffices")
}

func TestByteBufferExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.ExtendOrGrow(100)
	assert.Equal(t, 100, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 100)
}

func TestByteBufferPoolGetPut(t *testing.T) {
	p := NewByteBufferPool(32, 128)
	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, 1, 2, 3)

	p.Put(bb)
	reused := p.Get()
	assert.Zero(t, reused.Len(), "Put must reset the buffer before returning it to the pool")
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := NewByteBuffer(1024)
	p.Put(bb) // must not panic and must simply discard
	assert.Equal(t, 8, p.Get().Cap(), "the oversized buffer must not come back from the pool")
}

func TestPackageLevelDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	Put(bb)
}
