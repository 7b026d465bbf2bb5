// Package validator provides composable, type-safe validators.
//
// A Validator[T] checks a value of type T and returns nil when it is valid. Validators are
// built once, hold no state between calls and may be shared across goroutines.
//
// # Leaves
//
// Action wraps a function that fails with an error of its own choosing; the error is
// returned unchanged. Predicate, PredicateMsg and Rule wrap a boolean test; a false result
// fails with a *Failure carrying the optional message and, for Rule, a translation key
// and parameters. PredicateErr is a predicate whose test may itself fail.
//
// Every *Failure matches ErrValidationFailed, so predicate failures can be told apart from
// other errors:
//
//	if errors.Is(err, validator.ErrValidationFailed) {
//	    // a rule was not satisfied
//	}
//
// # Composition
//
// All runs its children in order and stops at the first error, returning it unchanged. Seq
// does the same for an iter.Seq and Predicates for raw boolean tests. An empty composite
// always passes. Collect runs every child and combines their errors with multierr.
//
//	name := validator.All(
//	    validator.Required(),
//	    validator.MinLen(3),
//	    validator.MaxLen(64),
//	)
//
//	signup := validator.Collect(
//	    validator.FieldOf("name", func(s Signup) string { return s.Name }, name),
//	    validator.FieldOf("email", func(s Signup) string { return s.Email }, validator.Email()),
//	)
//
// Adapt reuses a validator for a broader type, such as an interface the value implements,
// or for a part of the value. Field and FieldOf attribute errors to a field path, and
// FieldErrors, Failures and Walk take a combined error apart again.
//
// # Error codes
//
// ErrorCode builds an errcode.Code whose domain is a validator's type. Tag and Tagged wrap
// errors into a ValidationError carrying such a code. Nothing is tagged implicitly.
//
// # Deferred validation
//
// Defer turns a validator and a value into an async.Deferred that validates only when
// started and completes with the validation error, if any.
//
// # Rules
//
// Ready-made rules cover strings, numbers, comparable values, slices, patterns, emails,
// URLs, language tags and UUIDs. Their failures carry keys under "validation." that
// package messages can render in other languages.
package validator
