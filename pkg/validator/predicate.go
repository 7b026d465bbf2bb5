package validator

import "maps"

// predicate is a validator backed by a boolean test. A false result becomes a copy of failure
// with its own Params map, so callers may modify what they receive.
type predicate[T any] struct {
	fn      func(T) bool
	failure Failure
}

func (p *predicate[T]) Validate(value T) error {
	if p.fn(value) {
		return nil
	}
	f := p.failure
	f.Params = maps.Clone(p.failure.Params)
	return &f
}

// Predicate builds a predicate validator without a message.
// A panic raised by fn is not recovered.
func Predicate[T any](fn func(T) bool) Validator[T] {
	return &predicate[T]{fn: fn}
}

// PredicateMsg builds a predicate validator whose failure carries message.
func PredicateMsg[T any](message string, fn func(T) bool) Validator[T] {
	return &predicate[T]{fn: fn, failure: Failure{Message: message}}
}

// Rule builds a predicate validator that fails with the given failure template,
// including its translation key and parameters.
func Rule[T any](failure Failure, fn func(T) bool) Validator[T] {
	return &predicate[T]{fn: fn, failure: failure}
}

// fallible is a predicate that may also fail on its own.
type fallible[T any] struct {
	fn      func(T) (bool, error)
	message string
}

func (p *fallible[T]) Validate(value T) error {
	ok, err := p.fn(value)
	if err != nil {
		return err
	}
	if !ok {
		return &Failure{Message: p.message}
	}
	return nil
}

// PredicateErr builds a predicate whose test may fail with an error. That error is
// returned unchanged; a false result fails with message.
func PredicateErr[T any](message string, fn func(T) (bool, error)) Validator[T] {
	return &fallible[T]{fn: fn, message: message}
}
