// Package hash provides fast, non-cryptographic fingerprints used by the
// benchmark harness to verify a round trip without keeping two full copies
// of a dataset around for a byte-by-byte comparison.
package hash

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes returns the xxHash64 fingerprint of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float32Slice fingerprints a float32 array by its raw IEEE-754 bit
// patterns, so two arrays differing only in how a NaN's payload or a
// negative zero's sign bit round-tripped still hash differently.
func Float32Slice(data []float32) uint64 {
	d := xxhash.New()

	var buf [4]byte
	for _, v := range data {
		bits := math.Float32bits(v)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Float64Slice is the float64 analogue of Float32Slice.
func Float64Slice(data []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, v := range data {
		bits := math.Float64bits(v)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
