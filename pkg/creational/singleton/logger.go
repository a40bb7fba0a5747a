package singleton

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger is the worked example of the pattern: one process-wide
// structured logger, constructed on first use.
var defaultLogger = New(func() *zerolog.Logger {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &l
})

// Logger returns the process-wide logger. Every call returns the same
// *zerolog.Logger.
func Logger() *zerolog.Logger {
	return defaultLogger.Instance()
}

// SetLoggerOutput replaces the shared logger with one writing to w.
// Intended for tests capturing log output.
func SetLoggerOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.init = func() *zerolog.Logger {
		l := zerolog.New(w).With().Timestamp().Logger()
		return &l
	}
	defaultLogger.val = nil
	defaultLogger.done = false
}
