package validator

import "errors"

var (
	// ErrValidationFailed is the kind shared by every predicate failure.
	// Use errors.Is(err, ErrValidationFailed) to tell a failed check from other errors.
	ErrValidationFailed = errors.New("validation failed")
)

// Failure is returned when a predicate validator's test is false.
type Failure struct {
	Message string
	// Key and Params let the failure be rendered in another language.
	Key    string
	Params map[string]any
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return ErrValidationFailed.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return ErrValidationFailed
}

// IsFailure reports whether err, or anything it wraps, is a predicate failure.
func IsFailure(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
