package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validity/pkg/validator"
)

func TestDefer(t *testing.T) {
	t.Parallel()

	t.Run("does nothing until started", func(t *testing.T) {
		t.Parallel()
		var order []string
		m := newMock("m", &order, nil)

		task := validator.Defer[string](m, "v")

		assert.False(t, task.Started())
		m.AssertNotCalled(t, "Validate", mock.Anything)

		_, err := task.Await(context.Background())
		require.NoError(t, err)
		m.AssertCalled(t, "Validate", "v")
	})

	t.Run("completes with the validation error", func(t *testing.T) {
		t.Parallel()
		var order []string
		m := newMock("m", &order, errBoom)

		_, err := validator.Defer[string](m, "v").Await(context.Background())
		assert.Same(t, errBoom, err)
	})

	t.Run("runs once", func(t *testing.T) {
		t.Parallel()
		var order []string
		m := newMock("m", &order, errBoom)
		task := validator.Defer[string](m, "v")

		f1 := task.Start(context.Background())
		f2 := task.Start(context.Background())
		_, err1 := f1.Await()
		_, err2 := f2.Await()

		assert.Same(t, f1, f2)
		assert.Same(t, errBoom, err1)
		assert.Same(t, errBoom, err2)
		m.AssertNumberOfCalls(t, "Validate", 1)
	})

	t.Run("cancelled before start skips validation", func(t *testing.T) {
		t.Parallel()
		var order []string
		m := newMock("m", &order, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := validator.Defer[string](m, "v").Await(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		m.AssertNotCalled(t, "Validate", mock.Anything)
	})

	t.Run("cancel after start does not interrupt validation", func(t *testing.T) {
		t.Parallel()
		entered := make(chan struct{})
		release := make(chan struct{})
		v := validator.Action(func(string) error {
			close(entered)
			<-release
			return errBoom
		})
		ctx, cancel := context.WithCancel(context.Background())

		future := validator.Defer(v, "v").Start(ctx)
		<-entered
		cancel()
		close(release)

		_, err := future.Await()
		assert.Same(t, errBoom, err)
	})

	t.Run("predicate failure", func(t *testing.T) {
		t.Parallel()
		v := validator.PredicateMsg("must be positive", func(n int) bool { return n > 0 })

		_, err := validator.Defer(v, 5).Await(context.Background())
		assert.NoError(t, err)

		_, err = validator.Defer(v, -1).Await(context.Background())
		assert.EqualError(t, err, "must be positive")
	})
}
