package async_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/validity/pkg/async"
)

// BenchmarkDeferredAwait measures the cost of starting and awaiting one deferred action.
func BenchmarkDeferredAwait(b *testing.B) {
	ctx := context.Background()
	action := func() error { return nil }

	for b.Loop() {
		if _, err := async.FromAction(action).Await(ctx); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

// BenchmarkAsyncFanOut measures async overhead with 1000 concurrent CPU-bound tasks.
func BenchmarkAsyncFanOut(b *testing.B) {
	ctx := context.Background()
	work := func(_ context.Context, n int) (int, error) { return n * 2, nil }

	for b.Loop() {
		futures := make([]*async.Future[int], 1000)
		for i := range futures {
			futures[i] = async.Async(ctx, i, work)
		}
		if _, err := async.WaitAll(futures...); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
