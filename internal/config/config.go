// Package config provides configuration for the mice engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rdnp/mice/internal/errors"
)

// Config holds all program configuration.
// Settings are grouped into sub-configs the way they are consumed: the
// search orchestrator reads Search, the game loop reads Game and the
// command line tool reads Output.
type Config struct {
	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig

	// Verbosity controls logging: 0=warnings only, 1=decisions,
	// 2=per-piece search detail, 3=everything.
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
