package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validator records the validator name under the key "validator".
// An empty name yields an empty Attr.
func Validator(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("validator", name)
}

// Field records the validated field path under the key "field".
func Field(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("field", path)
}

// ErrorDomain records an error code domain under the key "error_domain".
func ErrorDomain(domain string) slog.Attr {
	if domain == "" {
		return slog.Attr{}
	}
	return slog.String("error_domain", domain)
}

// Lang records a language tag under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
