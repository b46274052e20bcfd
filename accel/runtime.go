// Package accel provides a simulated accelerator driver, ndzip's third
// driver kind: a SIMT-style device that processes one superblock per
// work-group and one hypercube per work-item, with explicit host/device
// buffer transfer and group-local barriers standing in for the GPU queue
// submission, shared local memory, and work-group synchronization a real
// SYCL or CUDA backend would provide.
//
// There is no GPU in this process; Runtime's job is to reproduce the
// concurrency *shape* a GPU kernel imposes (all work-items in a group
// finish phase N before any of them starts phase N+1) using goroutines, so
// the driver code in this package is structured exactly the way it would
// be against a real accelerator API.
package accel

import (
	"runtime"
	"sync"
)

// Buffer is a device-resident allocation. Its contents are only valid
// between a CopyToDevice and the matching CopyToHost.
type Buffer struct {
	data []byte
}

// Bytes exposes the buffer's backing storage. Callers on the host side must
// not read it while a Launch touching it is still in flight.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer's byte length.
func (b *Buffer) Len() int { return len(b.data) }

// Group is the work-group handle passed to a kernel: one per superblock.
type Group struct {
	id              int
	itemConcurrency int
}

// ID returns the work-group's index, i.e. which superblock it is processing.
func (g *Group) ID() int { return g.id }

// ForEachItem runs fn(0), fn(1), ..., fn(n-1) as concurrent work-items and
// blocks until all have returned. Each call is a full barrier: code in the
// kernel after ForEachItem returns only observes state written by every
// work-item's fn, mirroring SYCL's group.parallel_for_work_item boundary.
// If any work-item panics, the first panic value is re-raised on the calling
// goroutine once every work-item has returned.
func (g *Group) ForEachItem(n int, fn func(item int)) {
	if n <= 0 {
		return
	}

	limit := g.itemConcurrency
	if limit <= 0 || limit > n {
		limit = n
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	var panicOnce sync.Once
	var panicVal any
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(item int) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if rec := recover(); rec != nil {
					panicOnce.Do(func() { panicVal = rec })
				}
			}()
			fn(item)
		}(i)
	}
	wg.Wait()

	if panicVal != nil {
		panic(panicVal)
	}
}

// Runtime schedules work-groups onto simulated SIMT hardware. Launch is
// asynchronous, matching a real queue's submit-and-continue behavior;
// Synchronize blocks until every launch issued so far has completed.
type Runtime struct {
	groupItemConcurrency int
	groupConcurrency     int

	pending sync.WaitGroup
	mu      sync.Mutex
	err     error
}

// NewRuntime returns a Runtime. groupItemConcurrency bounds how many
// work-items within one group run at once (the simulated SIMT width);
// groupConcurrency bounds how many work-groups run at once across the whole
// device. A value <=0 for either resolves to runtime.GOMAXPROCS(0).
func NewRuntime(groupItemConcurrency, groupConcurrency int) *Runtime {
	if groupItemConcurrency <= 0 {
		groupItemConcurrency = runtime.GOMAXPROCS(0)
	}
	if groupConcurrency <= 0 {
		groupConcurrency = runtime.GOMAXPROCS(0)
	}

	return &Runtime{groupItemConcurrency: groupItemConcurrency, groupConcurrency: groupConcurrency}
}

// AllocateBuffer allocates a zeroed device buffer of size bytes.
func (r *Runtime) AllocateBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// CopyToDevice copies src into dst, truncating to len(dst) if src is longer.
func (r *Runtime) CopyToDevice(dst *Buffer, src []byte) {
	copy(dst.data, src)
}

// CopyToHost copies src into dst, truncating to len(dst) if src is longer.
func (r *Runtime) CopyToHost(dst []byte, src *Buffer) {
	copy(dst, src.data)
}

// Launch schedules numGroups work-groups, each running kernel(group) on its
// own simulated work-group. It returns immediately; call Synchronize to
// wait for completion. If kernel panics for any group, that panic is
// recovered and surfaced as an error from the next Synchronize call.
func (r *Runtime) Launch(numGroups int, kernel func(g *Group)) {
	r.pending.Add(1)

	go func() {
		defer r.pending.Done()

		var wg sync.WaitGroup
		sem := make(chan struct{}, r.groupConcurrency)
		for i := 0; i < numGroups; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(id int) {
				defer wg.Done()
				defer func() { <-sem }()

				defer func() {
					if rec := recover(); rec != nil {
						r.mu.Lock()
						if r.err == nil {
							r.err = &KernelPanicError{GroupID: id, Value: rec}
						}
						r.mu.Unlock()
					}
				}()

				kernel(&Group{id: id, itemConcurrency: r.groupItemConcurrency})
			}(i)
		}
		wg.Wait()
	}()
}

// Synchronize blocks until every Launch issued so far has completed, and
// returns the first kernel error encountered, if any.
func (r *Runtime) Synchronize() error {
	r.pending.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}
