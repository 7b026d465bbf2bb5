package validator

import "github.com/dmitrymomot/validity/pkg/async"

// Defer returns a deferred action that validates value with v when started.
// Nothing runs until Start or Await is called on the result. It completes with nil when
// validation passes and with the validator's error, unchanged, when it fails.
//
// The context given to Start is only checked before validation begins: if it is already
// done, v is never called and the action completes with the context's error. A validation
// that has started always runs to completion.
func Defer[T any](v Validator[T], value T) *async.Deferred[struct{}] {
	return async.FromAction(func() error {
		return v.Validate(value)
	})
}
