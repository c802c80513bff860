package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
	}{
		{"trace enables debug", "trace", true},
		{"debug enables debug", "debug", true},
		{"info disables debug", "info", false},
		{"warn disables debug", "warn", false},
		{"error disables debug", "error", false},
		{"unknown falls back to info", "bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := SetupHandlerText(tt.level, &buf)
			require.NotNil(t, handler)
			assert.Equal(t, tt.debugEnabled,
				handler.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
		})
	}

	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		handler := SetupHandlerText("info", nil)
		require.NotNil(t, handler)
	})
}

func TestSetupHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	handler := SetupHandlerJSON("debug", &buf)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Debug("hello", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)

	t.Run("info drops debug records", func(t *testing.T) {
		var out bytes.Buffer
		h := SetupHandlerJSON("info", &out)
		slog.New(h).Debug("quiet")
		assert.Empty(t, out.String())
	})
}

func TestSetupLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	SetupLogger("debug")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetupLogger("info")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
