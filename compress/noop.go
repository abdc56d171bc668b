package compress

// NoOpCodec passes data through unchanged, for callers that want packed
// document framing without the compression cost.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns a copy of data.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Decompress returns a copy of data.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
