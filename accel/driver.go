package accel

import (
	"github.com/arloliu/ndzip/errs"
	"github.com/arloliu/ndzip/extent"
	"github.com/arloliu/ndzip/hypercube"
	"github.com/arloliu/ndzip/profile"
	"github.com/arloliu/ndzip/stream"
)

// Driver is the accelerator/SIMT-simulated driver. Compression dispatches
// one work-group per superblock and one work-item per hypercube within it,
// following the same submit/launch/synchronize shape a real accelerator
// backend would require; its compressed output is byte-identical to the
// Sequential and MultiThreaded drivers.
type Driver struct {
	rt *Runtime
}

// NewDriver returns a Driver scheduled onto rt. A nil rt gets a
// default-sized Runtime.
func NewDriver(rt *Runtime) *Driver {
	if rt == nil {
		rt = NewRuntime(0, 0)
	}

	return &Driver{rt: rt}
}

func resolve(isF64 bool, e extent.Extent) (profile.Profile, error) {
	kind, ok := profile.KindFor(isF64, e.Dimensions())
	if !ok {
		return profile.Profile{}, errs.ErrInvalidExtent
	}

	return profile.For(kind), nil
}

// CompressedSizeBoundF32 returns the worst-case compressed byte length for a
// float32 array shaped like e.
func CompressedSizeBoundF32(e extent.Extent) (int, error) {
	p, err := resolve(false, e)
	if err != nil {
		return 0, err
	}

	return compressedSizeBound(p, e), nil
}

// CompressedSizeBoundF64 is the float64 analogue of CompressedSizeBoundF32.
func CompressedSizeBoundF64(e extent.Extent) (int, error) {
	p, err := resolve(true, e)
	if err != nil {
		return 0, err
	}

	return compressedSizeBound(p, e), nil
}

func compressedSizeBound(p profile.Profile, e extent.Extent) int {
	side := p.SideLength
	total := hypercube.Count(e, side)
	plan := stream.NewPlan(total, p.MaxHypercubesPerSuperblock)
	borderCount := e.BorderElementCount(side)

	return plan.CompressedSizeBound(p.CompressedBlockSizeBound, borderCount, p.BitsWidth/8)
}
