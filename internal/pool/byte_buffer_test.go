package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.B = append(bb.B, "hello"...)
	require.Equal(t, 5, bb.Len())
	require.Equal(t, "hello", bb.String())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap()) // memory retained
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, "12345678"...)

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, "12345678", bb.String()) // contents preserved

	// Growing within existing capacity must not reallocate.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowLargeRequest(t *testing.T) {
	bb := NewByteBuffer(8)
	huge := 8 * SerializeBufferDefaultSize
	bb.Grow(huge)
	require.GreaterOrEqual(t, bb.Cap(), huge)
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, "data"...)
	p.Put(bb)

	// Buffers come back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
	p.Put(bb2)
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 64)
	p.Put(bb) // dropped, must not panic

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 64)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestDefaultSerializePool(t *testing.T) {
	bb := GetSerializeBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.B = append(bb.B, '{', '}')
	PutSerializeBuffer(bb)
}
