package validator

import (
	"iter"
	"slices"

	"go.uber.org/multierr"
)

// composite runs its children in order and stops at the first error.
type composite[T any] struct {
	validators []Validator[T]
}

func (c *composite[T]) Validate(value T) error {
	for _, v := range c.validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// All combines validators into one that runs them in the given order and returns the
// first error unchanged. Later validators are not called. With no validators it always
// succeeds. Nil validators are dropped.
func All[T any](validators ...Validator[T]) Validator[T] {
	return &composite[T]{validators: compact(slices.Values(validators))}
}

// Seq is All for an arbitrary ordered sequence. The sequence is consumed once, at
// construction.
func Seq[T any](seq iter.Seq[Validator[T]]) Validator[T] {
	return &composite[T]{validators: compact(seq)}
}

// Predicates combines raw boolean tests, each as a predicate validator without a message.
func Predicates[T any](fns ...func(T) bool) Validator[T] {
	validators := make([]Validator[T], 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			validators = append(validators, Predicate(fn))
		}
	}
	return &composite[T]{validators: validators}
}

// collector runs every child and combines their errors.
type collector[T any] struct {
	validators []Validator[T]
}

func (c *collector[T]) Validate(value T) error {
	var err error
	for _, v := range c.validators {
		err = multierr.Append(err, v.Validate(value))
	}
	return err
}

// Collect combines validators into one that runs all of them, in order, and returns every
// error combined with multierr. A single error is returned as is.
func Collect[T any](validators ...Validator[T]) Validator[T] {
	return &collector[T]{validators: compact(slices.Values(validators))}
}

// adapted validates a T by projecting it onto the S that v understands.
type adapted[T, S any] struct {
	v  Validator[S]
	fn func(T) S
}

func (a *adapted[T, S]) Validate(value T) error {
	return a.v.Validate(a.fn(value))
}

// Adapt lets a validator for S be used where a validator for T is needed.
// For an interface S that T implements, pass an identity conversion:
//
//	var named validator.Validator[fmt.Stringer] = ...
//	v := validator.All(validator.Adapt(named, func(u User) fmt.Stringer { return u }))
//
// The same function can select a field of T.
func Adapt[T, S any](v Validator[S], fn func(T) S) Validator[T] {
	return &adapted[T, S]{v: v, fn: fn}
}

func compact[T any](seq iter.Seq[Validator[T]]) []Validator[T] {
	var out []Validator[T]
	if seq == nil {
		return out
	}
	for v := range seq {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
