package errcode

import "errors"

var (
	// ErrEmptyDomain is returned when a code is built without a domain.
	ErrEmptyDomain = errors.New("errcode: domain must not be empty")
)
