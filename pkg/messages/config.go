package messages

import (
	"context"

	"github.com/dmitrymomot/validity/pkg/config"
)

// Config locates the message file. It is read from the environment with config.Load.
type Config struct {
	Path        string `env:"VALIDATION_MESSAGES_PATH"`
	DefaultLang string `env:"VALIDATION_DEFAULT_LANG" envDefault:"en"`
}

// LoadFromEnv reads Config from the environment and builds the catalog it describes.
func LoadFromEnv(ctx context.Context, opts ...Option) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return Load(ctx, cfg, opts...)
}
