// Package compress provides the codecs used to pack serialized JSON
// documents into compact blobs.
//
// Compact JSON text is repetitive (keys, punctuation, literals), so even
// fast codecs shrink it substantially. Four codecs are built in:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// The Zstd codec has two implementations selected at build time: the pure-Go
// klauspost/compress encoder by default, and the cgo gozstd binding under the
// cgo_zstd build tag for deployments that can carry the C dependency.
package compress

import "fmt"

// Type identifies a compression codec in packed document headers.
type Type uint8

const (
	None Type = 0x1 // no compression
	Zstd Type = 0x2 // Zstandard
	S2   Type = 0x3 // S2 (Snappy-compatible)
	LZ4  Type = 0x4 // LZ4 block format
)

// String returns a human-readable codec name.
func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses document payloads.
//
// Implementations return newly allocated slices owned by the caller and do
// not modify their input. All built-in codecs are safe for concurrent use.
type Codec interface {
	// Compress compresses data and returns the result.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. It validates the input format and
	// returns an error for corrupted data or a mismatched codec.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCodec(),
	Zstd: NewZstdCodec(),
	S2:   NewS2Codec(),
	LZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given type.
func GetCodec(t Type) (Codec, error) {
	codec, ok := builtinCodecs[t]
	if !ok {
		return nil, fmt.Errorf("unsupported compression type: %d", uint8(t))
	}

	return codec, nil
}
