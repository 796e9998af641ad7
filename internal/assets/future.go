package assets

import "context"

// Future holds the eventual result of one resource load.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve must be called exactly once.
func (f *Future[T]) resolve(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Done is closed once the load has finished, successfully or not.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the load has finished without blocking.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome of a resolved future; ok is false while pending.
func (f *Future[T]) Result() (val T, ok bool, err error) {
	if !f.Resolved() {
		var zero T
		return zero, false, nil
	}
	return f.val, true, f.err
}
