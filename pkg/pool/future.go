package pool

import (
	"context"
	"sync"

	"github.com/jzx17/taskpool/pkg/types"
)

// Future is the result handle for a submitted task. It resolves exactly once,
// with either the task's return value or the failure the task raised. The
// executing worker is the sole producer; the submitter may read the result
// any number of times after resolution.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// newFuture creates an unresolved future
func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// resolve completes the future with a value
func (f *Future[T]) resolve(value T) {
	f.once.Do(func() {
		f.value = value
		close(f.done)
	})
}

// reject completes the future with the task's failure
func (f *Future[T]) reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Get blocks until the task resolves, then returns its value or the failure
// captured during execution.
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}

// GetContext is like Get but gives up when ctx is done. Abandoning the wait
// does not cancel the task; the future can still be read later.
func (f *Future[T]) GetContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the result without blocking. If the task has not resolved
// yet it returns types.ErrNotResolved.
func (f *Future[T]) TryGet() (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
		var zero T
		return zero, types.ErrNotResolved
	}
}

// Done returns a channel closed when the future resolves
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the future has resolved
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
