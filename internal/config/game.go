package config

import (
	"fmt"

	"github.com/rdnp/mice/internal/errors"
)

// GameConfig holds settings for playing games.
type GameConfig struct {
	// MaxPlies ends self-play after this many plies (0 = no limit)
	MaxPlies int

	// Vary picks uniformly among equally good moves instead of the first
	Vary bool

	// WhiteHuman and BlackHuman mark players that are not automata
	WhiteHuman bool
	BlackHuman bool
}

// NewGameConfig creates a GameConfig with default values.
// Both players are automata and games are not limited.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) is negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
