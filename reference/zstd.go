package reference

// ZstdCompressor wraps klauspost/compress's pure-Go Zstandard implementation
// as a generic reference Codec: a general-purpose byte compressor bench runs
// over the same raw array bytes as ndzip, for ratio and throughput
// comparison only.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Name returns "zstd".
func (c ZstdCompressor) Name() string { return "zstd" }
