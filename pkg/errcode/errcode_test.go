package errcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validity/pkg/errcode"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("keeps domain and text", func(t *testing.T) {
		c := errcode.New("users", "email taken")
		assert.Equal(t, "users", c.Domain())
		assert.Equal(t, "email taken", c.Text())
		assert.Equal(t, "users: email taken", fmt.Sprint(c))
	})

	t.Run("empty text means no text", func(t *testing.T) {
		c := errcode.New("users", "")
		assert.Empty(t, c.Text())
		assert.Equal(t, "users", fmt.Sprint(c))
	})

	t.Run("codes are comparable", func(t *testing.T) {
		assert.Equal(t, errcode.New("a", "b"), errcode.New("a", "b"))
		assert.NotEqual(t, errcode.New("a", "b"), errcode.New("a", "c"))
	})

	t.Run("panics on empty domain", func(t *testing.T) {
		assert.Panics(t, func() { errcode.New("  ", "x") })
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := errcode.Parse("", "text")
	require.ErrorIs(t, err, errcode.ErrEmptyDomain)

	c, err := errcode.Parse(" orders ", "")
	require.NoError(t, err)
	assert.Equal(t, "orders", c.Domain())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, errcode.Wrap(errcode.New("x", ""), nil))
	})

	t.Run("wrapped error keeps cause reachable", func(t *testing.T) {
		err := errcode.Wrap(errcode.New("x", "bad input"), cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "[x] bad input: boom", err.Error())
	})

	t.Run("message without text", func(t *testing.T) {
		err := errcode.Wrap(errcode.New("x", ""), cause)
		assert.Equal(t, "[x]: boom", err.Error())
	})
}

func TestOfAndIs(t *testing.T) {
	t.Parallel()

	inner := errcode.Wrap(errcode.New("inner", ""), errors.New("root"))
	outer := errcode.Wrap(errcode.New("outer", "ctx"), fmt.Errorf("op: %w", inner))

	c, ok := errcode.Of(outer)
	require.True(t, ok)
	assert.Equal(t, "outer", c.Domain())

	assert.True(t, errcode.Is(outer, "outer"))
	assert.True(t, errcode.Is(outer, "inner"))
	assert.False(t, errcode.Is(outer, "missing"))

	_, ok = errcode.Of(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, errcode.Is(nil, "outer"))

	t.Run("joined errors", func(t *testing.T) {
		t.Parallel()

		joined := errors.Join(
			errcode.Wrap(errcode.New("a", ""), errors.New("x")),
			fmt.Errorf("step: %w", errcode.Wrap(errcode.New("b", ""), errors.New("y"))),
		)

		assert.True(t, errcode.Is(joined, "a"))
		assert.True(t, errcode.Is(joined, "b"))
		assert.False(t, errcode.Is(joined, "c"))
	})

	t.Run("joined inside a coded error", func(t *testing.T) {
		t.Parallel()

		err := errcode.Wrap(errcode.New("outer", ""), errors.Join(
			errors.New("plain"),
			errcode.Wrap(errcode.New("deep", ""), errors.New("z")),
		))

		assert.True(t, errcode.Is(err, "deep"))
	})
}
