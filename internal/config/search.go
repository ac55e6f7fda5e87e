package config

import (
	"fmt"

	"github.com/rdnp/mice/internal/errors"
)

// Search limits.
const (
	MinQuality = 1
	MaxQuality = 7

	// DefaultResignThreshold is the score below which the engine resigns.
	// It is well under any material deficit short of losing the king.
	DefaultResignThreshold = -60000
)

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Workers is the number of pieces searched concurrently
	Workers int

	// Quality is the search depth in plies below the root
	Quality int

	// ResignThreshold is the best score under which the engine resigns
	ResignThreshold int

	// CheckConsistency verifies that no chosen candidate leaves the
	// mover's king capturable
	CheckConsistency bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Workers:          2,
		Quality:          4,
		ResignThreshold:  DefaultResignThreshold,
		CheckConsistency: true,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Quality < MinQuality || s.Quality > MaxQuality {
		return fmt.Errorf("quality (%d) outside %d..%d: %w",
			s.Quality, MinQuality, MaxQuality, errors.ErrInvalidConfig)
	}
	return nil
}
