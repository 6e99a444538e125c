package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "v1.2.3", "warn")

	log.Info("hidden")
	log.Warn("menu rejected", "reason", "already_open")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "module=breve")
	assert.Contains(t, out, "version=v1.2.3")
	assert.Contains(t, out, "reason=already_open")
}

func TestLogLoggerWritesThroughDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(NewConsoleLogger(&buf, "v0.0.1", "debug"))

	NewLogLogger(slog.LevelError).Print("tls handshake error")

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "tls handshake error")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
