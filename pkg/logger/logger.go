package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// Module is the module attribute attached to every record.
	Module = "breve"
)

// NewStructuredLogger creates a JSON logger writing to stderr.
// Module name and version are included in the logger's context.
// AddSource is enabled for debug level logging only.
// Parameters:
//   - version: The version of the binary (e.g., "v1.0.0").
//   - level: The log level as a string (e.g., "debug", "info", "warn", "error").
func NewStructuredLogger(version, level string) *slog.Logger {
	lev := ParseLogLevel(level)

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", Module, "version", version)
}

// NewConsoleLogger creates a text logger for w. The browser build writes to
// stderr, which the Go wasm runtime forwards to the developer console, so
// key=value lines read better there than JSON.
func NewConsoleLogger(w io.Writer, version, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	})).With("module", Module, "version", version)
}

// SetDefaultLogger sets a structured logger as the slog default, deriving the
// level from the LOG_LEVEL environment variable.
func SetDefaultLogger(version string) {
	slog.SetDefault(NewStructuredLogger(version, os.Getenv(EnvVarLogLevel)))
}

// NewLogLogger returns a standard library logger writing through the current
// slog default handler at level. The dev server hands it to http.Server.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), level)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Unrecognized strings map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
