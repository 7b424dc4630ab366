package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger sends logs to stderr so they stay off the game line.
func initLogger(lvl zerolog.Level) zerolog.Logger {
	zerolog.SetGlobalLevel(lvl)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "levdle").Logger()
	log.Logger = logger
	return logger
}
