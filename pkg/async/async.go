package async

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// complete stores the outcome and releases waiters. Must be called exactly once.
func (f *Future[U]) complete(res U, err error) {
	f.result = res
	f.err = err
	close(f.done)
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// Returns the result and error if the function completes before the timeout.
// If the timeout occurs before completion, returns a timeout error.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// AwaitContext waits for completion or for ctx to be done, whichever happens first.
// Giving up on the wait does not stop the running function; it still runs to completion.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
// Returns true if the function has completed, false otherwise.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Deferred is a unit of work that does not run until Start or Await is called.
// Once started it runs exactly once; later calls observe the same Future.
type Deferred[U any] struct {
	fn      func(context.Context) (U, error)
	started atomic.Bool
	future  *Future[U]
}

// Defer wraps fn into a Deferred without running it.
func Defer[U any](fn func(context.Context) (U, error)) *Deferred[U] {
	return &Deferred[U]{fn: fn, future: newFuture[U]()}
}

// FromAction adapts a zero-argument fallible action into a Deferred that completes
// with the action's error, or nil on success.
func FromAction(fn func() error) *Deferred[struct{}] {
	return Defer(func(context.Context) (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Start launches the work in its own goroutine and returns its Future.
// Only the first call launches anything.
func (d *Deferred[U]) Start(ctx context.Context) *Future[U] {
	if d.started.CompareAndSwap(false, true) {
		go d.run(ctx)
	}
	return d.future
}

// Await starts the work if needed and waits for it to finish.
func (d *Deferred[U]) Await(ctx context.Context) (U, error) {
	return d.Start(ctx).Await()
}

// Started reports whether Start has been called.
func (d *Deferred[U]) Started() bool {
	return d.started.Load()
}

func (d *Deferred[U]) run(ctx context.Context) {
	var (
		res U
		err error
	)
	defer func() {
		if r := recover(); r != nil {
			var zero U
			res, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
		d.future.complete(res, err)
	}()

	// Early exit prevents running work nobody waits for when ctx is pre-canceled
	if err = ctx.Err(); err != nil {
		return
	}

	res, err = d.fn(ctx)
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Defer(func(ctx context.Context) (U, error) {
		return fn(ctx, param)
	}).Start(ctx)
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will complete naturally
// when their respective futures finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffered so late finishers never block after the first one has been received
	done := make(chan outcome, len(futures))

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			done <- outcome{index, result, err}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
