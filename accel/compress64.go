package accel

import (
	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/stream"
)

// CompressF64 is the float64 analogue of CompressF32.
func (d *Driver) CompressF64(e extent.Extent, data []float64, out []byte) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	if len(data) != e.LinearSize() {
		return 0, errs.ErrInvalidExtent
	}

	side := p.SideLength
	origins := collectOrigins(e, side)
	plan := stream.NewPlan(len(origins), p.MaxHypercubesPerSuperblock)
	groups := partitionOrigins(origins, plan.HypercubesPerSuperblock)

	sbBodies := make([][]byte, len(groups))

	d.rt.Launch(len(groups), func(g *Group) {
		sb := groups[g.ID()]
		headerLen := stream.SuperblockHeaderLength(len(sb))

		hcLengths := make([]int, len(sb))
		hcStreams := make([][]byte, len(sb))

		g.ForEachItem(len(sb), func(item int) {
			scratch := make([]uint64, p.ElementCount())
			blockOut := make([]byte, p.CompressedBlockSizeBound)

			n, err := encodeHypercubeF64(data, e, sb[item], side, scratch, blockOut)
			if err != nil {
				panic(err)
			}

			hcStreams[item] = blockOut[:n]
			hcLengths[item] = n
		})

		relOffsets := make([]uint32, len(sb))
		absOffsets := make([]int, len(sb))
		rel := 0
		for i, n := range hcLengths {
			relOffsets[i] = uint32(rel)
			absOffsets[i] = headerLen + rel
			rel += n
		}

		sbBuf := make([]byte, headerLen+rel)
		if headerLen > 0 {
			stream.WriteSuperblockOffsetTable(sbBuf[:headerLen], relOffsets[1:])
		}

		g.ForEachItem(len(sb), func(item int) {
			copy(sbBuf[absOffsets[item]:], hcStreams[item])
		})

		sbBodies[g.ID()] = sbBuf
	})

	if err := d.rt.Synchronize(); err != nil {
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

	devStream := d.rt.AllocateBuffer(total)
	streamBytes := devStream.Bytes()

	var entries []uint64
	if len(sbBodies) == 0 {
		entries = []uint64{borderStart}
	} else {
		entries = starts[1:]
	}

	stream.WriteFileOffsetTable(streamBytes[:fileHeaderLen], entries)

	pos := fileHeaderLen
	for _, b := range sbBodies {
		copy(streamBytes[pos:], b)
		pos += len(b)
	}

	pos += stream.PackBorderF64(data, e, side, streamBytes[pos:])

	d.rt.CopyToHost(out[:pos], devStream)

	return pos, nil
}

// DecompressF64 is the float64 analogue of DecompressF32.
func (d *Driver) DecompressF64(e extent.Extent, data []byte, dst []float64) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

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

	devStream := d.rt.AllocateBuffer(len(data))
	d.rt.CopyToDevice(devStream, data)
	streamBytes := devStream.Bytes()

	sbErrs := make([]error, len(groups))

	d.rt.Launch(len(groups), func(g *Group) {
		i := g.ID()
		bodyStart, bodyEnd := starts[i], starts[i+1]
		if bodyEnd < bodyStart || bodyEnd > uint64(len(streamBytes)) {
			sbErrs[i] = errs.ErrFormatError

			return
		}

		body := streamBytes[bodyStart:bodyEnd]
		sb := groups[i]
		headerLen := stream.SuperblockHeaderLength(len(sb))

		if len(body) < headerLen {
			sbErrs[i] = errs.ErrFormatError

			return
		}

		var hcOffsets []uint32
		if len(sb) > 1 {
			var err error

			hcOffsets, err = stream.ReadSuperblockOffsetTable(body, len(sb)-1)
			if err != nil {
				sbErrs[i] = err

				return
			}

			if !stream.StrictlyIncreasingU32(hcOffsets) {
				sbErrs[i] = errs.ErrFormatError

				return
			}
		}

		g.ForEachItem(len(sb), func(item int) {
			start := headerLen
			if item > 0 {
				start = headerLen + int(hcOffsets[item-1])
			}

			if start > len(body) {
				panic(errs.ErrFormatError)
			}

			scratch := make([]uint64, p.ElementCount())
			if _, err := decodeHypercubeF64(body[start:], dst, e, sb[item], side, scratch); err != nil {
				panic(err)
			}
		})
	})

	if err := d.rt.Synchronize(); err != nil {
		return 0, err
	}

	for _, err := range sbErrs {
		if err != nil {
			return 0, err
		}
	}

	borderStart := entries[len(entries)-1]
	if borderStart > uint64(len(streamBytes)) {
		return 0, errs.ErrFormatError
	}

	borderCount := e.BorderElementCount(side)
	need := int(borderStart) + borderCount*(p.BitsWidth/8)
	if len(streamBytes) < need {
		return 0, errs.ErrFormatError
	}

	stream.UnpackBorderF64(streamBytes[borderStart:], dst, e, side)

	return need, nil
}
