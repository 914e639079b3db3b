// Package logging configures zerolog for the commands.
package logging

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level and returns a logger writing to out, pretty
// printed for format "console" and as JSON lines otherwise. Every entry
// carries a run_id unique to the call. The global logger of package log is
// replaced by the result.
func Setup(level, format string, out io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("run_id", uuid.NewString()).Logger()
	return log.Logger
}
