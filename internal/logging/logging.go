package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Setup builds the process logger. Development runs log at debug; otherwise
// level is parsed, falling back to warn so CLI output stays clean.
func Setup(environment, level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl := zerolog.WarnLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && level != "" {
		lvl = parsed
	}
	if environment == "development" {
		lvl = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).With().Timestamp().Logger().Level(lvl)
}
