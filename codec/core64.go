package codec

import (
	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/internal/pool"
	"github.com/arloliu/ndzip/profile"
	"github.com/arloliu/ndzip/stream"
)

// compressSuperblock64 is the float64 analogue of compressSuperblock32.
func compressSuperblock64(p profile.Profile, e extent.Extent, data []float64, origins [][]int) ([]byte, error) {
	headerLen := stream.SuperblockHeaderLength(len(origins))

	buf := pool.GetSuperblockBuffer()
	defer pool.PutSuperblockBuffer(buf)
	buf.ExtendOrGrow(headerLen)

	scratch, cleanup := pool.GetUint64Slice(p.ElementCount())
	defer cleanup()

	blockOut := make([]byte, p.CompressedBlockSizeBound)
	hcOffsets := make([]uint32, 0, len(origins)-1)

	for i, origin := range origins {
		n, err := encodeHypercubeF64(data, e, origin, p.SideLength, scratch, blockOut)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			hcOffsets = append(hcOffsets, uint32(buf.Len()-headerLen))
		}

		buf.MustWrite(blockOut[:n])
	}

	stream.WriteSuperblockOffsetTable(buf.Bytes()[:headerLen], hcOffsets)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// decodeSuperblock64 is the float64 analogue of decodeSuperblock32.
func decodeSuperblock64(p profile.Profile, e extent.Extent, body []byte, origins [][]int, dst []float64) error {
	headerLen := stream.SuperblockHeaderLength(len(origins))
	if len(body) < headerLen {
		return errs.ErrFormatError
	}

	var hcOffsets []uint32
	if len(origins) > 1 {
		var err error

		hcOffsets, err = stream.ReadSuperblockOffsetTable(body, len(origins)-1)
		if err != nil {
			return err
		}

		if !stream.StrictlyIncreasingU32(hcOffsets) {
			return errs.ErrFormatError
		}
	}

	scratch, cleanup := pool.GetUint64Slice(p.ElementCount())
	defer cleanup()

	for i, origin := range origins {
		start := headerLen
		if i > 0 {
			start = headerLen + int(hcOffsets[i-1])
		}

		if start > len(body) {
			return errs.ErrFormatError
		}

		if _, err := decodeHypercubeF64(body[start:], dst, e, origin, p.SideLength, scratch); err != nil {
			return err
		}
	}

	return nil
}

// compressF64 is the float64 analogue of compressF32.
func compressF64(p profile.Profile, e extent.Extent, data []float64, out []byte, workers int) (int, error) {
	if len(data) != e.LinearSize() {
		return 0, errs.ErrInvalidExtent
	}

	side := p.SideLength
	origins := collectOrigins(e, side)
	plan := stream.NewPlan(len(origins), p.MaxHypercubesPerSuperblock)
	groups := partitionOrigins(origins, plan.HypercubesPerSuperblock)

	sbBodies := make([][]byte, len(groups))
	err := runSuperblocks(len(groups), workers, func(i int) error {
		b, err := compressSuperblock64(p, e, data, groups[i])
		if err != nil {
			return err
		}
		sbBodies[i] = b

		return nil
	})
	if err != nil {
		return 0, err
	}

	fileHeaderLen := plan.FileHeaderLength()
	starts := make([]uint64, len(sbBodies)+1)
	starts[0] = uint64(fileHeaderLen)
	for i, b := range sbBodies {
		starts[i+1] = starts[i] + uint64(len(b))
	}

	borderStart := starts[len(starts)-1]
	borderCount := e.BorderElementCount(side)
	total := int(borderStart) + borderCount*(p.BitsWidth/8)

	if len(out) < total {
		return 0, errs.ErrInsufficientBuffer
	}

	var entries []uint64
	if len(sbBodies) == 0 {
		entries = []uint64{borderStart}
	} else {
		entries = starts[1:]
	}

	stream.WriteFileOffsetTable(out[:fileHeaderLen], entries)

	pos := fileHeaderLen
	for _, b := range sbBodies {
		copy(out[pos:], b)
		pos += len(b)
	}

	pos += stream.PackBorderF64(data, e, side, out[pos:])

	return pos, nil
}

// decompressF64 is the float64 analogue of decompressF32.
func decompressF64(p profile.Profile, e extent.Extent, data []byte, dst []float64, workers int) (int, error) {
	if len(dst) != e.LinearSize() {
		return 0, errs.ErrInvalidExtent
	}

	side := p.SideLength
	origins := collectOrigins(e, side)
	plan := stream.NewPlan(len(origins), p.MaxHypercubesPerSuperblock)

	numEntries := plan.NumSuperblocks()
	if numEntries == 0 {
		numEntries = 1
	}

	entries, err := stream.ReadFileOffsetTable(data, numEntries)
	if err != nil {
		return 0, err
	}

	if !stream.StrictlyIncreasingU64(entries) {
		return 0, errs.ErrFormatError
	}

	fileHeaderLen := plan.FileHeaderLength()
	starts := make([]uint64, len(entries)+1)
	starts[0] = uint64(fileHeaderLen)
	copy(starts[1:], entries)

	groups := partitionOrigins(origins, plan.HypercubesPerSuperblock)

	err = runSuperblocks(len(groups), workers, func(i int) error {
		bodyStart, bodyEnd := starts[i], starts[i+1]
		if bodyEnd < bodyStart || bodyEnd > uint64(len(data)) {
			return errs.ErrFormatError
		}

		return decodeSuperblock64(p, e, data[bodyStart:bodyEnd], groups[i], dst)
	})
	if err != nil {
		return 0, err
	}

	borderStart := entries[len(entries)-1]
	if borderStart > uint64(len(data)) {
		return 0, errs.ErrFormatError
	}

	borderCount := e.BorderElementCount(side)
	need := int(borderStart) + borderCount*(p.BitsWidth/8)
	if len(data) < need {
		return 0, errs.ErrFormatError
	}

	stream.UnpackBorderF64(data[borderStart:], dst, e, side)

	return need, nil
}
