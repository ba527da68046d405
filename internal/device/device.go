// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

// Package device emulates a data-parallel accelerator context on the
// CPU. A Pool owns persistent workers onto which kernels are launched
// as a grid of independent instances; each instance must touch only
// its own local data. There is no recovery channel inside a kernel:
// a failed invariant calls Abort, which halts the context rather than
// returning an error.
package device

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Fault carries the diagnostic of an aborted kernel. It is the panic
// value raised by Abort.
type Fault struct {
	Msg string
}

func (f Fault) Error() string {
	return "device fault: " + f.Msg
}

// Abort halts the execution context immediately. Inside a launched
// kernel there is nothing that recovers, so the fault takes down the
// process, mirroring an assert on real accelerator hardware.
func Abort(format string, args ...any) {
	panic(Fault{Msg: fmt.Sprintf(format, args...)})
}

// Pool is a persistent set of workers emulating accelerator lanes.
// It is created once and reused across many launches.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single kernel slice to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned
// immediately and reused until Close. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. All pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Launch executes kernel for every instance index in [0, grid) across
// the pool's workers and blocks until the whole grid completes.
// Instances are distributed by atomic work stealing, so no ordering
// between them may be assumed. A kernel that calls Abort terminates
// the context; Launch does not return in that case.
func (p *Pool) Launch(grid int, kernel func(instance int)) {
	if grid <= 0 {
		return
	}

	if p.closed.Load() {
		// Sequential fallback once the pool is gone.
		for i := 0; i < grid; i++ {
			kernel(i)
		}
		return
	}

	workers := min(p.numWorkers, grid)

	if workers == 1 {
		for i := 0; i < grid; i++ {
			kernel(i)
		}
		return
	}

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= grid {
						return
					}
					kernel(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
