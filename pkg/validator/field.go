package validator

import "errors"

// FieldError attributes a validation error to a named field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

type field[T any] struct {
	name string
	v    Validator[T]
}

func (f *field[T]) Validate(value T) error {
	if err := f.v.Validate(value); err != nil {
		return &FieldError{Field: f.name, Err: err}
	}
	return nil
}

// Field attributes every error returned by v to the field name.
func Field[T any](name string, v Validator[T]) Validator[T] {
	return &field[T]{name: name, v: v}
}

// FieldOf validates the part of T selected by get and attributes errors to name.
func FieldOf[T, S any](name string, get func(T) S, v Validator[S]) Validator[T] {
	return Field(name, Adapt(v, get))
}

// Failures returns every predicate failure found in err, in order.
func Failures(err error) []*Failure {
	var out []*Failure
	visit(err, func(e error) bool {
		if f, ok := e.(*Failure); ok {
			out = append(out, f)
			return false
		}
		return true
	})
	return out
}

// FieldErrors groups error messages by field path. Nested fields are joined with a dot;
// errors outside any field are listed under the empty key. Returns nil for a nil err.
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}
	out := make(map[string][]string)
	Walk(err, func(path string, leaf error) {
		out[path] = append(out[path], leaf.Error())
	})
	return out
}

// Walk calls fn for every leaf error in err together with the dotted path of the fields it
// was reported under. Field errors, tagged errors and combined errors are looked through, and
// so is any single-error wrapper (fmt.Errorf with %w, *errcode.Error) that has a field error
// below it. Anything else, including *Failure, is a leaf and keeps its full message.
func Walk(err error, fn func(path string, leaf error)) {
	walkPath(err, "", fn)
}

func walkPath(err error, path string, fn func(string, error)) {
	visit(err, func(e error) bool {
		switch x := e.(type) {
		case *Failure:
			fn(path, e)
			return false
		case *FieldError:
			walkPath(x.Err, joinPath(path, x.Field), fn)
			return false
		case *ValidationError:
			return true
		case interface{ Unwrap() []error }:
			return true
		case interface{ Unwrap() error }:
			var fe *FieldError
			if errors.As(x.Unwrap(), &fe) {
				return true
			}
			fn(path, e)
			return false
		default:
			fn(path, e)
			return false
		}
	})
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// visit walks err depth first. fn returns false to stop descending into e.
func visit(err error, fn func(error) bool) {
	if err == nil || !fn(err) {
		return
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			visit(e, fn)
		}
	case interface{ Unwrap() error }:
		visit(u.Unwrap(), fn)
	}
}
