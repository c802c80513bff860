package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "debug", logLevel(true))
	assert.Equal(t, "info", logLevel(false))
}

func TestSetupLogger(t *testing.T) {
	// Save original default logger to restore after tests
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	SetupLogger(logLevel(true))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetupLogger(logLevel(false))
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
