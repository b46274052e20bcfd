// Package reference wraps a handful of general-purpose byte-stream
// compressors behind one interface, used only by the benchmark harness to
// compare ndzip's ratio and throughput against off-the-shelf compressors
// run over the same raw array bytes. Nothing in the codec package imports
// this one: ndzip's own wire format never goes through a general-purpose
// compressor.
package reference

import "fmt"

// Codec compresses and decompresses opaque byte streams.
type Codec interface {
	// Compress compresses data and returns the compressed result. The
	// returned slice is newly allocated; data is left untouched.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. The returned slice is newly allocated.
	Decompress(data []byte) ([]byte, error)

	// Name identifies the codec for reporting purposes.
	Name() string
}

// Kind names one of the built-in reference codecs.
type Kind uint8

const (
	// None performs no compression; it exists as a baseline for ratio and
	// throughput comparisons.
	None Kind = iota
	// Zstd selects Zstandard.
	Zstd
	// S2 selects klauspost/compress's Snappy-compatible S2 format.
	S2
	// LZ4 selects the LZ4 block format.
	LZ4
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// New returns the built-in Codec for kind.
func New(kind Kind) (Codec, error) {
	switch kind {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("reference: unknown codec kind %d", kind)
	}
}

// All returns one Codec instance per built-in Kind, in declaration order,
// for benchmark harnesses that want to sweep every reference codec.
func All() []Codec {
	return []Codec{
		NewNoOpCompressor(),
		NewZstdCompressor(),
		NewS2Compressor(),
		NewLZ4Compressor(),
	}
}
