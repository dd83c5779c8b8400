package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output
func SetupLogger(debug bool) zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, debug)
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return newLogger(os.Stderr, debug)
}

// SetupCLILogger picks the console or JSON logger
func SetupCLILogger(debug, structured bool) zerolog.Logger {
	if structured {
		return SetupStructuredLogger(debug)
	}
	return SetupLogger(debug)
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
