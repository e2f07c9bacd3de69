package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger attached to context", func(t *testing.T) {
		expected := NewLogger(DefaultConfig())
		ctx := ContextWithLogger(context.Background(), expected)
		assert.Same(t, expected, FromContext(ctx))
	})

	t.Run("Should fall back to default logger when context has none", func(t *testing.T) {
		assert.Same(t, GetDefault(), FromContext(context.Background()))
	})

	t.Run("Should fall back to default logger for nil context", func(t *testing.T) {
		assert.Same(t, GetDefault(), FromContext(nil)) //nolint:staticcheck // nil-safety is the point
	})
}

func TestLoggerOutput(t *testing.T) {
	t.Run("Should write structured key-values to the configured output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf})
		log.Info("task forwarded", "issue", "ABC-1")
		out := buf.String()
		assert.Contains(t, out, "task forwarded")
		assert.Contains(t, out, "ABC-1")
	})

	t.Run("Should suppress messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: ErrorLevel, Output: &buf})
		log.Info("noise")
		assert.Empty(t, buf.String())
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		log.Info("hello", "k", "v")
		require.NotEmpty(t, buf.String())
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("Should carry fields added via With", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf}).With("issue", "ABC-2")
		log.Warn("slow response")
		assert.Contains(t, buf.String(), "ABC-2")
	})
}

func TestLogLevel(t *testing.T) {
	t.Run("Should default unknown levels to info", func(t *testing.T) {
		assert.Equal(t, InfoLevel.ToCharmlogLevel(), LogLevel("bogus").ToCharmlogLevel())
	})
}
