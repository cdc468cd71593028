package termfolio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/termfolio/pkg/termfolio"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := termfolio.NewLogger(&buf, zerolog.InfoLevel)

	logger.Info().Msg("session started")
	logger.Debug().Msg("hidden")

	output := buf.String()
	if !strings.Contains(output, "session started") {
		t.Errorf("Expected log output to contain 'session started', got: %s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("Debug output should be filtered at info level, got: %s", output)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), "lib=termfolio") {
		t.Errorf("Expected log output to end with 'lib=termfolio', got: %s", output)
	}
}

func TestLogLevelFromString(t *testing.T) {
	testCases := []struct {
		levelStr string
		expected zerolog.Level
		wantErr  bool
	}{
		{"", zerolog.WarnLevel, false},
		{"trace", zerolog.TraceLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"invalid", zerolog.NoLevel, true},
	}

	for _, tc := range testCases {
		t.Run(tc.levelStr, func(t *testing.T) {
			level, err := termfolio.LogLevelFromString(tc.levelStr)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for invalid level %q", tc.levelStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if level != tc.expected {
				t.Errorf("Expected level %v, got %v", tc.expected, level)
			}
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	testCases := []struct {
		verbose  int
		expected zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		logger := termfolio.NewTestLogger(&buf, tc.verbose)
		if logger.GetLevel() != tc.expected {
			t.Errorf("Expected level %v for verbose %d, got %v", tc.expected, tc.verbose, logger.GetLevel())
		}
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := termfolio.Component(termfolio.NewLogger(&buf, zerolog.InfoLevel), "shell")
	logger.Info().Msg("ready")

	if !strings.Contains(buf.String(), "component=shell") {
		t.Errorf("Expected component tag in output, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "lib=termfolio") {
		t.Errorf("Component should keep the lib tag, got: %s", buf.String())
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	if got := termfolio.LevelFromVerbosity(-1); got != zerolog.WarnLevel {
		t.Errorf("Expected negative verbosity to mean warn, got %v", got)
	}
	if got := termfolio.LevelFromVerbosity(2); got != zerolog.DebugLevel {
		t.Errorf("Expected debug for verbosity 2, got %v", got)
	}
}
