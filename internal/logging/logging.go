// Package logging builds the zerolog logger used across Dusk.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05"

// New returns a console logger writing to w at the given level. An empty
// level means info.
func New(w io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: consoleTimeFormat,
		NoColor:    noColor,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Stderr returns a console logger on os.Stderr.
func Stderr(level string, noColor bool) (zerolog.Logger, error) {
	return New(os.Stderr, level, noColor)
}

// ParseLevel accepts zerolog level names case-insensitively.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return lvl, nil
}
