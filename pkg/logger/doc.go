// Package logger builds *slog.Logger values with functional options and provides attribute
// helpers so log keys stay consistent across packages.
//
// New picks a text or JSON handler, applies static attributes and, when context extractors
// are registered, wraps the handler so each record is enriched from its context.
// Environment presets choose sensible defaults:
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "signup-api"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
// Load reads a Config from LOG_LEVEL, LOG_FORMAT, APP_ENV and SERVICE_NAME through package
// config and builds the logger it describes.
//
// Attribute helpers such as Error, Validator and Field return an empty attribute for empty
// input, which slog drops, so they can be passed without nil checks:
//
//	log.Warn("validation failed", logger.Validator("signup"), logger.Error(err))
package logger
