package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds the process logger. Verbosity raises the level from the
// warn default; quiet mode disables logging entirely.
func newLogger(cfg *Config) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case cfg.Quiet:
		level = zerolog.Disabled
	case cfg.Verbosity == 1:
		level = zerolog.InfoLevel
	case cfg.Verbosity >= 2:
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
