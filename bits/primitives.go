// Package bits provides the low-level integer primitives the ndzip codec
// builds on: unaligned little-endian load/store, single-bit rotation, and
// small integer helpers that the block transform and block encoder share.
//
// Everything here is stateless and safe for concurrent use; none of it
// allocates.
package bits

import (
	"encoding/binary"
	"math/bits"
)

// wireEngine is the byte order every multi-byte integer in the stream
// format is read and written through, regardless of the host's native byte
// order: the file offset table, superblock offset tables, chunk masks and
// bitplanes, and packed border values are all little-endian on the wire
// whatever the host's own endianness is.
var wireEngine = binary.LittleEndian

// Unsigned is the set of bits-type values the codec operates on: the
// unsigned integers of the same width as the supported IEEE-754 value
// types (uint32 for float32, uint64 for float64).
type Unsigned interface {
	~uint32 | ~uint64
}

// LoadUnaligned32 reads a little-endian uint32 from the first 4 bytes of b.
// b must have at least 4 bytes; the caller is responsible for bounds checks,
// mirroring the unaligned-load primitive the original codec relies on.
func LoadUnaligned32(b []byte) uint32 {
	return wireEngine.Uint32(b)
}

// StoreUnaligned32 writes v to the first 4 bytes of b as little-endian.
func StoreUnaligned32(b []byte, v uint32) {
	wireEngine.PutUint32(b, v)
}

// LoadUnaligned64 reads a little-endian uint64 from the first 8 bytes of b.
func LoadUnaligned64(b []byte) uint64 {
	return wireEngine.Uint64(b)
}

// StoreUnaligned64 writes v to the first 8 bytes of b as little-endian.
func StoreUnaligned64(b []byte, v uint64) {
	wireEngine.PutUint64(b, v)
}

// RotateLeft1_32 rotates a uint32 left by one bit.
func RotateLeft1_32(v uint32) uint32 { return bits.RotateLeft32(v, 1) }

// RotateRight1_32 rotates a uint32 right by one bit, the inverse of
// RotateLeft1_32.
func RotateRight1_32(v uint32) uint32 { return bits.RotateLeft32(v, -1) }

// RotateLeft1_64 rotates a uint64 left by one bit.
func RotateLeft1_64(v uint64) uint64 { return bits.RotateLeft64(v, 1) }

// RotateRight1_64 rotates a uint64 right by one bit, the inverse of
// RotateLeft1_64.
func RotateRight1_64(v uint64) uint64 { return bits.RotateLeft64(v, -1) }

// IPow returns base raised to the non-negative integer power exp.
//
// Used to compute S^D (elements per hypercube) from profile constants;
// exp is always small (1, 2, or 3) in practice.
func IPow(base, exp int) int {
	result := 1
	for range exp {
		result *= base
	}

	return result
}

// PopCount32 returns the number of set bits in v.
func PopCount32(v uint32) int { return bits.OnesCount32(v) }

// PopCount64 returns the number of set bits in v.
func PopCount64(v uint64) int { return bits.OnesCount64(v) }
