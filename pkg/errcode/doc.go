// Package errcode provides domain-classified error codes and a wrapper type that attaches
// them to arbitrary errors.
//
// A Code pairs a domain, which identifies the component that produced a failure, with an
// optional human-readable text. Codes are plain comparable values and carry no behaviour;
// the Error type attaches one to an underlying error while keeping it reachable through
// errors.Is and errors.As.
//
// # Usage
//
//	code := errcode.New("billing.invoice", "amount must be positive")
//	err := errcode.Wrap(code, cause)
//
//	if c, ok := errcode.Of(err); ok {
//	    fmt.Println(c.Domain(), c.Text())
//	}
//
//	if errcode.Is(err, "billing.invoice") {
//	    // handle
//	}
//
// # Error Handling
//
// New panics when the domain is empty; use Parse to receive ErrEmptyDomain instead.
package errcode
