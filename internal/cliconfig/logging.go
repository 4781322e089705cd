package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger returns the CLI logger: console output on stderr, coloured only
// when stderr is a terminal.
func Logger() zerolog.Logger {
	return NewLogger(os.Stderr, isTerminal(os.Stderr))
}

// NewLogger builds a console logger writing to w.
func NewLogger(w io.Writer, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// WithLevel returns logger filtered to the named level. An unknown level
// leaves the logger unchanged; Validate rejects those earlier.
func WithLevel(logger zerolog.Logger, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return logger
	}
	return logger.Level(lvl)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
