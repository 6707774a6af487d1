// Package workers runs blocking work off the render goroutine.
//
// A Pool holds at most one task at a time. The caller submits a task and
// polls for its result once per frame; polling never blocks.
package workers

import (
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one task
type Result[T any] struct {
	Value T
	Err   error
}

// Pool runs submitted tasks on a background goroutine, one at a time.
// A task's slot is held until its result has been polled.
type Pool[T any] struct {
	group   errgroup.Group
	results chan Result[T]
	busy    atomic.Bool
	stopped atomic.Bool
}

// New creates an idle pool
func New[T any]() *Pool[T] {
	p := &Pool[T]{
		results: make(chan Result[T], 1),
	}
	p.group.SetLimit(1)
	return p
}

// Submit starts task in the background. It returns false, without running
// task, when another task is in flight or unpolled, or the pool is stopped.
func (p *Pool[T]) Submit(task func() (T, error)) bool {
	if p.stopped.Load() {
		return false
	}
	if !p.busy.CompareAndSwap(false, true) {
		return false
	}

	started := p.group.TryGo(func() error {
		value, err := task()
		// Buffered and only one task holds the slot, so this never blocks
		p.results <- Result[T]{Value: value, Err: err}
		return nil
	})
	if !started {
		p.busy.Store(false)
		return false
	}
	return true
}

// Poll returns the finished task's result, if there is one.
// It never blocks. Once a result is returned the pool accepts a new task.
func (p *Pool[T]) Poll() (Result[T], bool) {
	select {
	case r := <-p.results:
		p.busy.Store(false)
		return r, true
	default:
		return Result[T]{}, false
	}
}

// Stop refuses further tasks. A task already running is left to finish on
// its own; Stop does not wait for it.
func (p *Pool[T]) Stop() {
	p.stopped.Store(true)
}
