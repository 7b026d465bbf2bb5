package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validity/pkg/logger"
)

func TestNewContextHandler(t *testing.T) {
	t.Run("without extractors returns next", func(t *testing.T) {
		next := slog.NewTextHandler(&bytes.Buffer{}, nil)
		assert.Same(t, next, logger.NewContextHandler(next, nil, nil))
	})

	t.Run("adds extracted attributes and skips empty ones", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewTextHandler(buf, nil),
			func(context.Context) (slog.Attr, bool) { return logger.Field("user.email"), true },
			func(context.Context) (slog.Attr, bool) { return logger.Error(nil), true },
			func(context.Context) (slog.Attr, bool) { return slog.String("never", "x"), false },
		)

		slog.New(h).With("component", "test").WithGroup("g").InfoContext(context.Background(), "checked")

		out := buf.String()
		assert.Contains(t, out, "component=test")
		assert.Contains(t, out, "g.field=user.email")
		assert.NotContains(t, out, "never")
		assert.NotContains(t, out, "error")
	})
}
