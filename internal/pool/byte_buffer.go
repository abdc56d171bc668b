package pool

import "sync"

// Buffer sizing for pooled serialization buffers.
//
// Most JSON documents serialize into a few KiB; buffers that grew beyond the
// threshold while serializing a large document are discarded instead of being
// returned to the pool, so one outlier does not pin memory forever.
const (
	SerializeBufferDefaultSize  = 1024 * 4   // 4KiB
	SerializeBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a growable byte buffer whose backing slice is reused across
// serialization calls via ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice. Serializers append to it directly.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written to the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer, retaining the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// String returns the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Small buffers grow by SerializeBufferDefaultSize to minimize reallocations;
// larger buffers grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SerializeBufferDefaultSize
	if cap(bb.B) > 4*SerializeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers bounded by a maximum retained
// capacity, built on sync.Pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize bytes.
// Buffers whose capacity exceeds maxThreshold are dropped on Put; a
// maxThreshold of 0 disables the limit.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat.
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var serializePool = NewByteBufferPool(SerializeBufferDefaultSize, SerializeBufferMaxThreshold)

// GetSerializeBuffer retrieves a ByteBuffer from the default serialization pool.
func GetSerializeBuffer() *ByteBuffer {
	return serializePool.Get()
}

// PutSerializeBuffer returns a ByteBuffer to the default serialization pool.
func PutSerializeBuffer(bb *ByteBuffer) {
	serializePool.Put(bb)
}
