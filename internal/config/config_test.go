package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	mierrors "github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/testutil"
)

// TestSearchConfig_Defaults verifies SearchConfig has the documented defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	testutil.AssertEqual(t, cfg.Workers, 2)
	testutil.AssertEqual(t, cfg.Quality, 4)
	testutil.AssertEqual(t, cfg.ResignThreshold, -60000)
	testutil.AssertTrue(t, cfg.CheckConsistency)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"defaults", *NewSearchConfig(), false},
		{"lowest quality", SearchConfig{Workers: 1, Quality: 1}, false},
		{"highest quality", SearchConfig{Workers: 8, Quality: 7}, false},
		{"no workers", SearchConfig{Workers: 0, Quality: 4}, true},
		{"quality too low", SearchConfig{Workers: 2, Quality: 0}, true},
		{"quality too high", SearchConfig{Workers: 2, Quality: 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, mierrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	testutil.AssertNoError(t, NewConfig().Validate())

	cfg := NewConfig()
	cfg.Game.MaxPlies = -1
	testutil.AssertError(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Verbosity = -2
	testutil.AssertError(t, cfg.Validate())
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		cfg.Verbosity = tt.verbosity
		testutil.AssertEqual(t, cfg.LogLevel(), tt.want, "verbosity %d", tt.verbosity)
	}
}

func TestConfig_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()
	log := cfg.Logger()

	log.Debug().Msg("hidden")
	log.Info().Str("move", "e2e4").Msg("chosen")

	out := buf.String()
	testutil.AssertContains(t, out, "chosen")
	testutil.AssertContains(t, out, "move=e2e4")
	testutil.AssertFalse(t, strings.Contains(out, "hidden"))

	cfg.SetLog(nil)
	quiet := cfg.Logger()
	quiet.Error().Msg("dropped")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithWorkers(4).
		WithQuality(6).
		WithResignThreshold(-50000).
		WithConsistencyCheck(false).
		WithMaxPlies(80).
		WithVary(true).
		WithHumans(true, false).
		WithJSONOutput(true).
		WithOutput(buf).
		Build()

	testutil.AssertEqual(t, cfg.Search.Workers, 4)
	testutil.AssertEqual(t, cfg.Search.Quality, 6)
	testutil.AssertEqual(t, cfg.Search.ResignThreshold, -50000)
	testutil.AssertFalse(t, cfg.Search.CheckConsistency)
	testutil.AssertEqual(t, cfg.Game.MaxPlies, 80)
	testutil.AssertTrue(t, cfg.Game.Vary)
	testutil.AssertTrue(t, cfg.Game.WhiteHuman)
	testutil.AssertFalse(t, cfg.Game.BlackHuman)
	testutil.AssertTrue(t, cfg.Output.JSONFormat)
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
}
