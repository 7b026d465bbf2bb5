package logger

import (
	"log/slog"

	"github.com/dmitrymomot/validity/pkg/config"
)

// Load reads Config from the environment (and the default .env file) and builds a logger.
func Load(opts ...Option) (*slog.Logger, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return FromConfig(cfg, opts...)
}
