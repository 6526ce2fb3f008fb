package thing

import (
	"context"
	"sync"
)

// Pending is an asynchronous result that has not settled yet. It is
// the explicit, tagged counterpart of a thenable: a Member returns a
// Pending when its value will only become available later, and the
// dispatcher waits for it before producing its own result.
type Pending interface {
	// Await blocks until the result settles or ctx is done, whichever
	// comes first.
	Await(ctx context.Context) (any, error)
}

// Future is the standard Pending implementation. A Future settles at
// most once, via Resolve or Reject; Await calls before settlement
// block, calls after settlement return immediately. Safe for
// concurrent use.
type Future struct {
	once  sync.Once
	done  chan struct{}
	value any
	err   error
}

// NewFuture creates an unsettled Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve settles the future with a value. Calls after the first
// settlement are ignored.
func (f *Future) Resolve(value any) {
	f.once.Do(func() {
		f.value = value
		close(f.done)
	})
}

// Reject settles the future with an error. Calls after the first
// settlement are ignored.
func (f *Future) Reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future settles or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolved returns a Future already settled with value.
func Resolved(value any) *Future {
	f := NewFuture()
	f.Resolve(value)
	return f
}

// Rejected returns a Future already settled with err.
func Rejected(err error) *Future {
	f := NewFuture()
	f.Reject(err)
	return f
}

// Compile-time interface satisfaction check.
var _ Pending = (*Future)(nil)
