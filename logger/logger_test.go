package logger_test

import (
	"bytes"
	"errors"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger/logger_test\.go:\d+`)
)

func newTestLogger(b *bytes.Buffer, level logger.LogLevel) logger.Logger {
	return logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(level))
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"", logger.LogLevelUnk},
		{"debug", logger.LogLevelUnk},
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestSignpostLoggerLevels(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	// Arrange
	b := new(bytes.Buffer)
	l := newTestLogger(b, logger.LogLevelWarn)

	// Act
	l.Debug("debug", nil)
	l.Info("info", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Warn("warn", nil)

	// Assert
	require.Equal(t, "[WARN]", logLevelRegexp.FindString(b.String()))
	require.Regexp(t, fpRegexp, b.String())
	require.Contains(t, b.String(), "'warn'")

	// Arrange
	b.Reset()

	// Act
	l.Error("oops", &logger.LogContext{Error: errors.New("boom")})

	// Assert
	require.Equal(t, "[ERROR]", logLevelRegexp.FindString(b.String()))
	require.Contains(t, b.String(), `log_context: {"error":"boom"}`)
}

func TestSignpostLoggerCaller(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")

	// Arrange
	b := new(bytes.Buffer)
	l := newTestLogger(b, logger.LogLevelDebug)

	// Act
	l.Debug("from elsewhere", &logger.LogContext{Caller: "somewhere/else.go:12"})

	// Assert
	require.Contains(t, b.String(), "[DEBUG] somewhere/else.go:12 'from elsewhere'")
	require.Equal(t, logger.LogLevelDebug, l.LogLevel())
}
