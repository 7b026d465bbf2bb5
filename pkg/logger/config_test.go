package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validity/pkg/config"
	"github.com/dmitrymomot/validity/pkg/logger"
)

func TestFromConfig(t *testing.T) {
	t.Run("environment preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.FromConfig(logger.Config{Env: "production", Service: "api"}, logger.WithOutput(buf))
		require.NoError(t, err)
		log.Debug("hidden")
		log.Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "api", entry["service"])
	})

	t.Run("explicit level and format override preset", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.FromConfig(logger.Config{
			Env:     "production",
			Service: "api",
			Level:   "debug",
			Format:  "TEXT",
		}, logger.WithOutput(buf))
		require.NoError(t, err)
		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.FromConfig(logger.Config{Level: "loud"})
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.FromConfig(logger.Config{Format: "xml"})
		assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	})
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVICE_NAME", "from-env")
	t.Setenv("LOG_LEVEL", "warn")

	buf := &bytes.Buffer{}
	log, err := logger.Load(logger.WithOutput(buf))
	require.NoError(t, err)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	entry := decode(t, buf)
	assert.Equal(t, "from-env", entry["service"])
	assert.Equal(t, "WARN", entry["level"])
}
