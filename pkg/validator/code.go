package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrymomot/validity/pkg/errcode"
)

// ValidationError classifies a validation failure with an error code whose domain names the
// validator type that produced it. Nothing in this package creates one implicitly; use Tag or
// Tagged where domain-classified errors are wanted.
type ValidationError struct {
	Code errcode.Code
	Err  error
}

// NewValidationError wraps cause with code.
func NewValidationError(code errcode.Code, cause error) *ValidationError {
	return &ValidationError{Code: code, Err: cause}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation error")
	if e.Code != nil {
		b.WriteString(" [")
		b.WriteString(e.Code.Domain())
		b.WriteString("]")
	}

	var text, cause string
	if e.Code != nil {
		text = e.Code.Text()
	}
	if e.Err != nil {
		cause = e.Err.Error()
	}

	switch {
	case text != "" && cause != "" && text != cause:
		b.WriteString(": " + text + ": " + cause)
	case cause != "":
		b.WriteString(": " + cause)
	case text != "":
		b.WriteString(": " + text)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) ErrorCode() errcode.Code { return e.Code }

// ErrorCode builds a code whose domain is the declaring type of v and whose text is text.
// An empty text yields a code without text.
func ErrorCode(v any, text string) errcode.Code {
	return ErrorCodeOf(reflect.TypeOf(v), text)
}

// ErrorCodeOf is ErrorCode for a type known up front.
func ErrorCodeOf(t reflect.Type, text string) errcode.Code {
	return errcode.New(typeDomain(t), text)
}

// typeDomain renders t as "import/path.Name", looking through pointers.
func typeDomain(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// Tag wraps err in a ValidationError attributed to v. The code text is the predicate
// failure message when err carries one. Returns nil for a nil err.
func Tag(v any, err error) error {
	if err == nil {
		return nil
	}
	var text string
	var f *Failure
	if errors.As(err, &f) {
		text = f.Message
	}
	return NewValidationError(ErrorCode(v, text), err)
}

type tagged[T any] struct {
	v Validator[T]
}

func (t *tagged[T]) Validate(value T) error {
	return Tag(t.v, t.v.Validate(value))
}

// Tagged decorates v so every error it returns is passed through Tag.
func Tagged[T any](v Validator[T]) Validator[T] {
	return &tagged[T]{v: v}
}
