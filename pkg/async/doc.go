// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around two types. Deferred describes work that has not started yet:
// it is built with Defer or FromAction and does nothing until Start or Await is called. Future
// represents the eventual result of work that has been started. Start may be called any number of
// times; the work runs exactly once and every caller observes the same Future.
//
// Async is the eager shortcut: it builds a Deferred and starts it immediately. WaitAll and WaitAny
// coordinate several futures, either collecting every result or returning the first one to
// finish.
//
// # Usage
//
//	import (
//	    "context"
//	    "github.com/dmitrymomot/validity/pkg/async"
//	)
//
//	func main() {
//	    task := async.FromAction(func() error {
//	        return doWork()
//	    })
//
//	    // nothing has run yet
//	    future := task.Start(context.Background())
//
//	    // do other work …
//	    if _, err := future.Await(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Cancellation
//
// If the context passed to Start is already cancelled, the work is skipped and the Future completes
// with the context error. Once the work is running it is never interrupted by this package;
// AwaitContext and AwaitWithTimeout only stop waiting for it.
//
// # Error Handling
//
// Futures complete with the error returned by the user callback, unchanged. A panic inside the
// callback is recovered and reported as an error wrapping ErrPanic. AwaitWithTimeout returns
// ErrTimeout and WaitAny returns ErrNoFutures when called without futures.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around goroutines and channels.  The overhead is minimal but you
// should avoid spawning an excessive number of goroutines if the workload could be better handled
// by a worker pool or other means of limiting concurrency.
package async
