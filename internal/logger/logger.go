// Package logger wraps zerolog for the terminal app.
//
// The TUI owns stdout, so diagnostics go to a JSON lines file next to the
// database. Callers pass *Logger by pointer; tests use Nop.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the log file created next to the database.
const FileName = "skillmatch.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a Logger writing JSON to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	l := zerolog.New(w).Level(level).With().
		Timestamp().
		Logger()
	return &Logger{l}
}

// NewFileLogger opens (or creates) FileName inside dir and logs to it.
// When the file cannot be opened it falls back to a discarding logger and
// returns a no-op closer, so logging never blocks startup.
func NewFileLogger(dir string, level zerolog.Level) (*Logger, func() error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Nop(), func() error { return nil }
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Nop(), func() error { return nil }
	}
	return New(f, level), f.Close
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger tagged with the component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{l.Logger.With().Str("component", component).Logger()}
}
