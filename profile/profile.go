// Package profile bundles the per-(value-type, rank) constants ndzip needs:
// hypercube side length, the bits-type width used for the transform and
// encoder, and the derived size bounds that let the file layout size its
// scratch and offset tables ahead of time.
//
// A Profile is selected once, at the API boundary (Compress/Decompress), and
// the hot path below it is monomorphic: every subsequent call operates on a
// concrete bits width (uint32 or uint64) chosen by the caller's value type,
// never on an interface value per element.
package profile

// Kind identifies one of the six supported (value-type, rank) combinations.
//
// A Kind is not stored in the compressed stream (spec: "a profile identifier
// is not stored in the stream"); the caller must decompress with the same
// Kind it compressed with.
type Kind uint8

const (
	F32D1 Kind = iota
	F32D2
	F32D3
	F64D1
	F64D2
	F64D3
)

// String returns a short human-readable name, e.g. "f32d2".
func (k Kind) String() string {
	switch k {
	case F32D1:
		return "f32d1"
	case F32D2:
		return "f32d2"
	case F32D3:
		return "f32d3"
	case F64D1:
		return "f64d1"
	case F64D2:
		return "f64d2"
	case F64D3:
		return "f64d3"
	default:
		return "unknown"
	}
}

// hypercubeElementCount is S^D, fixed across every profile by construction:
// 4096 elements per hypercube regardless of rank.
const hypercubeElementCount = 4096

// maxHypercubesPerSuperblock bounds how many hypercubes a single superblock
// may contain. It doubles as the accelerator driver's work-group size: one
// work-item per hypercube in the superblock.
const maxHypercubesPerSuperblock = 64

// Profile is the resolved constant bundle for one Kind.
type Profile struct {
	Kind Kind

	// Dimensions is D, the array rank (1, 2, or 3).
	Dimensions int

	// SideLength is S, the hypercube side length for this rank. S^D is
	// always hypercubeElementCount.
	SideLength int

	// BitsWidth is the width in bits of the bits-type B (32 for float32,
	// 64 for float64). It also doubles as W, the chunk width used by the
	// block encoder: one chunk is W consecutive elements.
	BitsWidth int

	// MaxHypercubesPerSuperblock is the profile-fixed superblock capacity.
	MaxHypercubesPerSuperblock int

	// CompressedBlockSizeBound is the worst-case encoded size in bytes of
	// a single hypercube: every chunk's occupancy mask is all-ones, so
	// every one of its W bitplanes is emitted alongside the mask itself.
	CompressedBlockSizeBound int

	// HypercubeOffsetSize is the width in bytes of the hypercube_offset_type
	// used in superblock headers: the smallest power-of-two width that can
	// hold MaxHypercubesPerSuperblock*CompressedBlockSizeBound. Every
	// profile in this module resolves to 4 (uint32); the field is kept
	// explicit because it is a format-level decision, not an implementation
	// detail.
	HypercubeOffsetSize int
}

// ElementCount returns S^D, the number of elements in one hypercube of this
// profile. It is always hypercubeElementCount, exposed as a method so callers
// never need to recompute bits.IPow themselves.
func (p Profile) ElementCount() int { return hypercubeElementCount }

// ChunksPerHypercube returns the number of W-element chunks a hypercube is
// partitioned into by the block encoder.
func (p Profile) ChunksPerHypercube() int { return hypercubeElementCount / p.BitsWidth }

var table = map[Kind]Profile{
	F32D1: newProfile(F32D1, 1, 4096, 32),
	F32D2: newProfile(F32D2, 2, 64, 32),
	F32D3: newProfile(F32D3, 3, 16, 32),
	F64D1: newProfile(F64D1, 1, 4096, 64),
	F64D2: newProfile(F64D2, 2, 64, 64),
	F64D3: newProfile(F64D3, 3, 16, 64),
}

func newProfile(kind Kind, dims, side, width int) Profile {
	chunks := hypercubeElementCount / width
	blockBound := chunks * (width + 1) * (width / 8)
	offsetBound := maxHypercubesPerSuperblock * blockBound

	offsetSize := 4
	switch {
	case offsetBound <= 1<<16-1:
		offsetSize = 2
	case offsetBound <= 1<<32-1:
		offsetSize = 4
	default:
		offsetSize = 8
	}

	return Profile{
		Kind:                       kind,
		Dimensions:                 dims,
		SideLength:                 side,
		BitsWidth:                  width,
		MaxHypercubesPerSuperblock: maxHypercubesPerSuperblock,
		CompressedBlockSizeBound:   blockBound,
		HypercubeOffsetSize:        offsetSize,
	}
}

// For resolves the Profile bundle for kind. kind is always one of the six
// constants above, so this never fails; it is a function (not a plain map
// lookup at call sites) so the table stays a private implementation detail.
func For(kind Kind) Profile {
	return table[kind]
}

// KindFor resolves the Kind for a (is64Bit, dimensions) pair. dimensions must
// be 1, 2, or 3; callers validate this against extent.New before calling.
func KindFor(is64Bit bool, dimensions int) (Kind, bool) {
	switch {
	case !is64Bit && dimensions == 1:
		return F32D1, true
	case !is64Bit && dimensions == 2:
		return F32D2, true
	case !is64Bit && dimensions == 3:
		return F32D3, true
	case is64Bit && dimensions == 1:
		return F64D1, true
	case is64Bit && dimensions == 2:
		return F64D2, true
	case is64Bit && dimensions == 3:
		return F64D3, true
	default:
		return 0, false
	}
}
