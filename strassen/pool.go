// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many forked tasks run concurrently. It is created once by
// the caller, shared by any number of multiplications, and closed when no
// longer needed.
//
// A pool of n workers lets n-1 forked tasks run on their own goroutines next
// to the goroutine that started the multiplication. When every slot is taken,
// a forked task runs inline on the forking goroutine instead of waiting, so a
// parent blocked in join never starves its own children.
type Pool struct {
	workers int
	slots   *semaphore.Weighted
	closed  atomic.Bool

	forked  atomic.Int64
	inlined atomic.Int64
	leaves  atomic.Int64
}

// Stats is a snapshot of the pool's task counters.
type Stats struct {
	Forked  int64 // tasks that ran on their own goroutine
	Inlined int64 // tasks that ran on the forking goroutine
	Leaves  int64 // classical multiplications (recursion leaves)
}

// Tasks returns the number of forked sub-tasks, whichever way they ran.
func (s Stats) Tasks() int64 { return s.Forked + s.Inlined }

// NewPool creates a pool with the given number of workers.
// If workers <= 0, uses GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Pool{
		workers: workers,
		slots:   semaphore.NewWeighted(int64(workers - 1)),
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// Stats returns the counters accumulated since the pool was created.
func (p *Pool) Stats() Stats {
	return Stats{
		Forked:  p.forked.Load(),
		Inlined: p.inlined.Load(),
		Leaves:  p.leaves.Load(),
	}
}

// Close marks the pool closed. Multiplications already running complete;
// new ones fail with ErrPoolClosed. Calling Close multiple times is safe.
func (p *Pool) Close() { p.closed.Store(true) }

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool { return p.closed.Load() }

// forkJoin is one fork-join barrier: fork any number of tasks, then join once.
// fork and join must be called from the goroutine that created the barrier.
type forkJoin struct {
	pool      *Pool
	group     errgroup.Group
	inlineErr error
}

func (p *Pool) newForkJoin() *forkJoin { return &forkJoin{pool: p} }

// fork schedules fn on a free worker slot or runs it inline. After an inline
// failure the remaining forks are skipped; the level fails at join anyway.
func (fj *forkJoin) fork(fn func() error) {
	if fj.inlineErr != nil {
		return
	}
	if fj.pool.slots.TryAcquire(1) {
		fj.pool.forked.Add(1)
		fj.group.Go(func() error {
			defer fj.pool.slots.Release(1)
			return runTask(fn)
		})
		return
	}
	fj.pool.inlined.Add(1)
	fj.inlineErr = runTask(fn)
}

// join blocks until every goroutine forked on this barrier has returned and
// reports the first error observed.
func (fj *forkJoin) join() error {
	err := fj.group.Wait()
	if err == nil {
		err = fj.inlineErr
	}

	return err
}

// runTask executes fn and converts a panic into ErrTaskPanicked.
func runTask(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return fn()
}
