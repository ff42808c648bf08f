package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"capper-server/internal/config"
)

// New creates the service logger. Development gets the human-readable
// console writer; everything else logs structured JSON for collectors.
func New(cfg *config.Config) zerolog.Logger {
	var output io.Writer = os.Stdout
	if cfg.Environment == "development" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(parseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

func parseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
