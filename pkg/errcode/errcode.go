package errcode

import (
	"errors"
	"strings"
)

// Code classifies an error by the domain that produced it, with optional descriptive text.
type Code interface {
	Domain() string
	Text() string
}

// simpleCode is the default Code implementation. It is comparable, so two codes built
// from the same domain and text are equal.
type simpleCode struct {
	domain string
	text   string
}

func (c simpleCode) Domain() string { return c.domain }
func (c simpleCode) Text() string   { return c.text }

func (c simpleCode) String() string {
	if c.text == "" {
		return c.domain
	}
	return c.domain + ": " + c.text
}

// New creates a Code for the given domain. An empty text means the code carries no text.
// Panics on an empty domain: a code without a domain cannot be classified.
func New(domain, text string) Code {
	c, err := Parse(domain, text)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse is the non-panicking variant of New.
func Parse(domain, text string) (Code, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, ErrEmptyDomain
	}
	return simpleCode{domain: domain, text: text}, nil
}

// Coder is implemented by errors that carry a Code.
type Coder interface {
	error
	ErrorCode() Code
}

// Error pairs a Code with the failure it classifies.
type Error struct {
	Code Code
	Err  error
}

// Wrap attaches code to err. Returns nil if err is nil.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != nil {
		b.WriteString("[")
		b.WriteString(e.Code.Domain())
		b.WriteString("]")
		if t := e.Code.Text(); t != "" {
			b.WriteString(" ")
			b.WriteString(t)
		}
	}
	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) ErrorCode() Code { return e.Code }

// Of returns the first Code found in err's chain.
func Of(err error) (Code, bool) {
	var c Coder
	if errors.As(err, &c) && c.ErrorCode() != nil {
		return c.ErrorCode(), true
	}
	return nil, false
}

// Is reports whether any Coder in err's tree carries a code of the given domain.
// Joined errors are searched branch by branch, in the same order as errors.As.
func Is(err error, domain string) bool {
	if err == nil {
		return false
	}
	if c, ok := err.(Coder); ok {
		if code := c.ErrorCode(); code != nil && code.Domain() == domain {
			return true
		}
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if Is(e, domain) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Is(u.Unwrap(), domain)
	}
	return false
}
