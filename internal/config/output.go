package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints a board diagram after each position
	ShowBoard bool

	// ShowFEN prints the FEN of each position
	ShowFEN bool

	// MaxLineLength wraps movetext (0 = 80)
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		ShowFEN:       true,
		MaxLineLength: 80,
	}
}
