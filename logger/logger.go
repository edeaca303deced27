package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(newConsoleWriter(os.Stderr)).With().Timestamp().Logger()

func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

// Init configures the process-wide logger. format is "console" or "json".
func Init(level, format string) error {
	return InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "json":
	case "console", "":
		w = newConsoleWriter(w)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Logger returns the configured logger for callers that want structured fields.
func Logger() *zerolog.Logger {
	return &logger
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Error(err error) {
	logger.Error().Err(err).Send()
}

// Fatal logs err and exits with status 1.
func Fatal(err error) {
	logger.Fatal().Err(err).Send()
}
