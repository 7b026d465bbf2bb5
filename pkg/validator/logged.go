package validator

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/validity/pkg/errcode"
	"github.com/dmitrymomot/validity/pkg/logger"
)

type logged[T any] struct {
	v    Validator[T]
	log  *slog.Logger
	name string
}

func (l *logged[T]) Validate(value T) error {
	start := time.Now()
	err := l.v.Validate(value)
	if err != nil {
		attrs := []any{logger.Validator(l.name), logger.Error(err), logger.Duration(time.Since(start))}
		if code, ok := errcode.Of(err); ok {
			attrs = append(attrs, logger.ErrorDomain(code.Domain()))
		}
		l.log.Warn("validation failed", attrs...)
		return err
	}
	l.log.Debug("validation passed", logger.Validator(l.name), logger.Duration(time.Since(start)))
	return nil
}

// Logged decorates v with logging: failures at warn level, successes at debug level.
// Failures carrying an error code also log its domain. The error is returned unchanged.
// A nil log falls back to slog.Default().
func Logged[T any](v Validator[T], log *slog.Logger, name string) Validator[T] {
	if log == nil {
		log = slog.Default()
	}
	return &logged[T]{v: v, log: log, name: name}
}
