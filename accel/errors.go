package accel

import (
	"fmt"

	"github.com/arloliu/ndzip/errs"
)

// KernelPanicError reports a kernel function that panicked while processing
// a work-group. It unwraps to errs.ErrAcceleratorError.
type KernelPanicError struct {
	GroupID int
	Value   any
}

func (e *KernelPanicError) Error() string {
	return fmt.Sprintf("ndzip: accelerator error: work-group %d panicked: %v", e.GroupID, e.Value)
}

func (e *KernelPanicError) Unwrap() error { return errs.ErrAcceleratorError }
