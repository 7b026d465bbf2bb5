package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a configured level is not a slog level name.
	ErrInvalidLevel = errors.New("logger: invalid log level")

	// ErrInvalidFormat is returned when a configured format is neither json nor text.
	ErrInvalidFormat = errors.New("logger: invalid log format")
)
