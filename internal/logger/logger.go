// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr at the named level.
// pretty selects the human-readable console format used by the CLI;
// otherwise events are JSON lines. Unknown levels fall back to info.
func New(level string, pretty bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, pretty)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(w io.Writer, level string, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		}
	}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Str("service", "bhava").
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
