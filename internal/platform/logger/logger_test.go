// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/axiome/firstprinciples-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLevel slog.Level
		wantOK    bool
	}{
		{"debug", "debug", slog.LevelDebug, true},
		{"upper case", "DEBUG", slog.LevelDebug, true},
		{"info", "info", slog.LevelInfo, true},
		{"empty defaults to info", "", slog.LevelInfo, true},
		{"warn", "warn", slog.LevelWarn, true},
		{"warning alias", "warning", slog.LevelWarn, true},
		{"error", "error", slog.LevelError, true},
		{"invalid", "verbose", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			level, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

// TestSetup verifies level filtering and JSON output. It replaces the default
// logger, so it does not run in parallel.
func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden message")
	l.Warn("visible message", "topic", "graphs")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible message", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "graphs", entries[0]["topic"])

	// Setup installs the logger as the default.
	slog.Error("via default")
	assert.Contains(t, buf.String(), "via default")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "invalid_level", Output: buf})
	require.NoError(t, err)

	l.Debug("debug message")
	l.Info("info message")

	assert.NotContains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "info message")
}

func TestContextHandler_AddsTraceID(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger()

	ctx := logger.WithTraceID(context.Background(), "trace-123")
	l.InfoContext(ctx, "with trace")
	l.With("component", "test").WithGroup("g").InfoContext(ctx, "grouped", "k", "v")
	l.InfoContext(context.Background(), "without trace")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "trace-123", entries[0]["trace_id"])
	assert.Equal(t, "test", entries[1]["component"])
	group, ok := entries[1]["g"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "trace-123", group["trace_id"])
	assert.NotContains(t, entries[2], "trace_id")
}

func TestTraceIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", logger.TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", logger.TraceIDFromContext(logger.WithTraceID(context.Background(), "abc")))
}
