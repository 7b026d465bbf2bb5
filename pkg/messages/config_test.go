package messages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validity/pkg/config"
	"github.com/dmitrymomot/validity/pkg/messages"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		cat, err := messages.Load(context.Background(), messages.Config{DefaultLang: "de"})
		require.NoError(t, err)
		assert.Equal(t, "de", cat.DefaultLanguage())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		cat, err := messages.Load(context.Background(), messages.Config{Path: "testdata/messages.yaml", DefaultLang: "de"})
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, cat.Languages())
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VALIDATION_MESSAGES_PATH", "testdata/messages.json")
	t.Setenv("VALIDATION_DEFAULT_LANG", "fr")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	cat, err := messages.LoadFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fr", cat.DefaultLanguage())
	assert.Equal(t, "x est obligatoire", cat.Translate("ja", "validation.required", map[string]any{"field": "x"}))
}
