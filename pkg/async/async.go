package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to be done, whichever comes first.
// Giving up on the wait does not stop the computation.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the future settles.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Resolved returns a future that is already complete with value.
func Resolved[U any](value U) *Future[U] {
	f := &Future[U]{result: value, done: make(chan struct{})}
	close(f.done)
	return f
}

// Rejected returns a future that is already complete with err.
func Rejected[U any](err error) *Future[U] {
	f := &Future[U]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Async executes fn in its own goroutine and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
//
// fn is not called when ctx is already cancelled; the future then settles with ctx.Err().
// A panic inside fn settles the future with an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// Early exit prevents goroutine work when context is pre-canceled
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Result is the settled outcome of one future.
type Result[U any] struct {
	Value U
	Err   error
}

// AllSettled waits for every future to complete, regardless of individual
// failures, and returns their outcomes in input order.
func AllSettled[U any](futures ...*Future[U]) []Result[U] {
	results := make([]Result[U], len(futures))
	for i, future := range futures {
		results[i].Value, results[i].Err = future.Await()
	}
	return results
}

// FirstError returns the first non-nil error among settled results.
func FirstError[U any](results []Result[U]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
