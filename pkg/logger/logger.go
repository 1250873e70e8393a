package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the server logger. JSON to stdout by default; set
// LOG_PRETTY=1 for a human console writer during development.
func New() *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var log zerolog.Logger
	if os.Getenv("LOG_PRETTY") != "" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05",
		}
		log = zerolog.New(output).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		log = log.Level(level)
	}

	return &log
}
