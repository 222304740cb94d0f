package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	Setup("debug", "text")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	Setup("warn", "json")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	Setup("nonsense", "text")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo), "unknown levels fall back to info")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
