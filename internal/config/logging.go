package config

import (
	"time"

	"github.com/rs/zerolog"
)

// LogLevel maps the verbosity to a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.WarnLevel
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	case c.Verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Logger builds a logger writing to LogFile at the configured level.
// A nil LogFile disables logging.
func (c *Config) Logger() zerolog.Logger {
	if c.LogFile == nil {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: c.LogFile, TimeFormat: time.TimeOnly, NoColor: true}).
		Level(c.LogLevel()).
		With().
		Timestamp().
		Logger()
}
