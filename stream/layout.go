// Package stream implements the ndzip container format: the file offset
// table, per-superblock headers and offset tables, and the verbatim
// border region. It is deliberately agnostic of the transform
// and block encoder — it only knows how to lay out and navigate byte
// regions, not how to interpret a hypercube's payload.
package stream

// FileHeaderOffsetWidth is the byte width of each file offset table entry
// (a u64).
const FileHeaderOffsetWidth = 8

// HypercubeOffsetWidth is the byte width of each superblock offset table
// entry. Every profile this module supports resolves hypercube_offset_type
// to a 4-byte unsigned integer (profile.Profile.HypercubeOffsetSize), so the
// superblock header reader/writer below is hardwired to uint32 rather than
// threading a variable width through every call site.
const HypercubeOffsetWidth = 4

// Plan describes how a total hypercube count is grouped into superblocks of
// at most maxPerSuperblock hypercubes each, with the last superblock
// holding the remainder (it may be shorter than the rest).
type Plan struct {
	// TotalHypercubes is the number of hypercubes across the whole extent.
	TotalHypercubes int

	// HypercubesPerSuperblock holds, for each superblock in order, the
	// number of hypercubes it contains.
	HypercubesPerSuperblock []int
}

// NewPlan builds the superblock grouping for totalHypercubes hypercubes,
// capped at maxPerSuperblock hypercubes per superblock.
func NewPlan(totalHypercubes, maxPerSuperblock int) Plan {
	if totalHypercubes == 0 {
		return Plan{TotalHypercubes: 0}
	}

	numSuperblocks := (totalHypercubes + maxPerSuperblock - 1) / maxPerSuperblock
	counts := make([]int, numSuperblocks)

	remaining := totalHypercubes
	for i := range counts {
		n := maxPerSuperblock
		if n > remaining {
			n = remaining
		}

		counts[i] = n
		remaining -= n
	}

	return Plan{TotalHypercubes: totalHypercubes, HypercubesPerSuperblock: counts}
}

// NumSuperblocks returns N_sb, the number of superblocks in the plan.
func (p Plan) NumSuperblocks() int { return len(p.HypercubesPerSuperblock) }

// FileHeaderLength returns N_sb*8, the byte length of the file offset
// table. For a plan with zero superblocks (an input with no hypercubes at
// all, e.g. an extent entirely smaller than the hypercube side length),
// the file still carries a single entry recording the border's start,
// since the stream always begins with a file header followed by a
// (possibly empty) superblock sequence and then the border.
func (p Plan) FileHeaderLength() int {
	n := p.NumSuperblocks()
	if n == 0 {
		n = 1
	}

	return n * FileHeaderOffsetWidth
}

// SuperblockHeaderLength returns (H-1)*4, the byte length of the offset
// table at the start of a superblock body containing H hypercubes.
func SuperblockHeaderLength(hypercubeCount int) int {
	if hypercubeCount == 0 {
		return 0
	}

	return (hypercubeCount - 1) * HypercubeOffsetWidth
}

// CompressedSizeBound returns the worst-case byte length of a compressed
// stream for a plan whose hypercubes each cost at most blockSizeBound
// bytes, plus borderElements native values of valueByteWidth bytes each.
func (p Plan) CompressedSizeBound(blockSizeBound, borderElements, valueByteWidth int) int {
	bound := p.FileHeaderLength()
	for _, h := range p.HypercubesPerSuperblock {
		bound += SuperblockHeaderLength(h)
		bound += h * blockSizeBound
	}

	bound += borderElements * valueByteWidth

	return bound
}
