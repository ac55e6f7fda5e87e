package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of concurrent piece searches.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithQuality sets the search depth.
func (b *ConfigBuilder) WithQuality(q int) *ConfigBuilder {
	b.cfg.Search.Quality = q
	return b
}

// WithResignThreshold sets the resignation score.
func (b *ConfigBuilder) WithResignThreshold(threshold int) *ConfigBuilder {
	b.cfg.Search.ResignThreshold = threshold
	return b
}

// WithConsistencyCheck enables the king safety check on chosen moves.
func (b *ConfigBuilder) WithConsistencyCheck(enabled bool) *ConfigBuilder {
	b.cfg.Search.CheckConsistency = enabled
	return b
}

// WithMaxPlies limits self-play games.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Game.MaxPlies = n
	return b
}

// WithVary enables random choice among equally good moves.
func (b *ConfigBuilder) WithVary(enabled bool) *ConfigBuilder {
	b.cfg.Game.Vary = enabled
	return b
}

// WithHumans marks which players are human.
func (b *ConfigBuilder) WithHumans(white, black bool) *ConfigBuilder {
	b.cfg.Game.WhiteHuman = white
	b.cfg.Game.BlackHuman = black
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithVerbosity sets the logging verbosity.
func (b *ConfigBuilder) WithVerbosity(v int) *ConfigBuilder {
	b.cfg.Verbosity = v
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
