// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment, later
//     files overriding earlier ones.
//   - Load parses the environment into any struct using `env` field tags. The
//     default `.env` in the working directory is read once, if present.
//   - Each configuration type is parsed once and cached; later Load calls for the
//     same type copy the cached value.
//   - MustLoadEnv and MustLoad panic instead of returning an error.
//
// # Usage
//
//	type MessagesConfig struct {
//	    Path string `env:"VALIDATION_MESSAGES_PATH,required"`
//	    Lang string `env:"VALIDATION_DEFAULT_LANG" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg MessagesConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`     – failed to parse env vars into struct.
//   - `ErrInvalidConfigType` – the target is not a struct.
//   - `ErrNilPointer`        – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFile`    – a dotenv file could not be read.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests or `ForceReloadConfig(&cfg)`
// to re-parse one struct after the process environment changes.
package config
