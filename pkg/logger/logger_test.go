package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input))
	}
}

func TestInit(t *testing.T) {
	// Verify it doesn't panic
	Init(slog.LevelDebug)
	Debug("test message")
	Info("test message")
	Warn("test message")
	Error("test message")
}

func TestInitWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, slog.LevelWarn)
	t.Cleanup(func() { Init(slog.LevelInfo) })

	Info("hidden")
	Warn("shown", "module", "test")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "module=test")
}
