package compress

// ZstdCodec offers the best compression ratio of the built-in codecs,
// suited to archival of packed documents.
//
// Two implementations exist behind build tags: the default pure-Go encoder
// from klauspost/compress, and the cgo gozstd binding under the cgo_zstd
// tag for builds that accept the C dependency in exchange for throughput.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
