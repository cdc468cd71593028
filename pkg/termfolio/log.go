// Package termfolio holds the pieces shared by the portfolio terminal's
// packages and its command-line host.
package termfolio

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a new logger instance with a specified level and output.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "termfolio").
		Logger()
}

// Component tags every event of l with the part of the terminal that
// emitted it, e.g. "shell" or "vfs".
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// LevelFromVerbosity maps a -v count to a level: none is warn, and each
// step lowers it by one down to trace.
func LevelFromVerbosity(verbose int) zerolog.Level {
	switch {
	case verbose <= 0:
		return zerolog.WarnLevel
	case verbose == 1:
		return zerolog.InfoLevel
	case verbose == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewTestLogger creates a logger for tests at the given verbosity.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	return NewLogger(w, LevelFromVerbosity(verbose))
}

// LogLevelFromString parses a level name. An empty name means warn.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	if strings.TrimSpace(levelStr) == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(levelStr))
}

// DefaultLogger returns a logger with default settings (warn level, stderr output).
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}
