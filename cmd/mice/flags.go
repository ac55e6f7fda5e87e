// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/rdnp/mice/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	moveList  = flag.String("moves", "", "Space-separated moves to play first (e.g. \"e2e4 e7e5\")")

	// Search options
	quality         = flag.Int("q", 4, "Search quality in plies (1-7)")
	workers         = flag.Int("workers", 2, "Number of pieces searched concurrently")
	resignThreshold = flag.Int("resign", config.DefaultResignThreshold, "Resign below this score")
	noConsistency   = flag.Bool("nocheck", false, "Skip the king safety check on chosen moves")

	// Mode options
	perftDepth = flag.Int("perft", 0, "Count leaf positions to depth D and exit")
	divide     = flag.Bool("divide", false, "With -perft, break the count down by first move")
	selfPlay   = flag.Int("selfplay", 0, "Let the engine play itself for N plies (-1 = until the game ends)")
	humanSide  = flag.String("human", "", "Play against the engine as white, black or both (moves read from stdin)")
	vary       = flag.Bool("vary", false, "Choose randomly among equally good moves")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print board diagrams")
	noFEN      = flag.Bool("nofen", false, "Don't print FEN strings")
	lineLength = flag.Int("w", 80, "Maximum movetext line length")

	// Logging options
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	verbosity = flag.Int("v", 1, "Log verbosity: 0=warnings, 1=decisions, 2=pieces, 3=trace")
	quiet     = flag.Bool("s", false, "Silent mode: no log output")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig creates a configuration from the parsed flags.
func buildConfig() *config.Config {
	cfg := config.NewConfigBuilder().
		WithQuality(*quality).
		WithWorkers(*workers).
		WithResignThreshold(*resignThreshold).
		WithConsistencyCheck(!*noConsistency).
		WithVary(*vary).
		WithJSONOutput(*jsonOutput).
		WithVerbosity(*verbosity).
		Build()

	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	return cfg
}

// applyGameFlags sets player roles and the ply limit.
func applyGameFlags(cfg *config.Config) {
	if *selfPlay > 0 {
		cfg.Game.MaxPlies = *selfPlay
	}
	switch *humanSide {
	case "white", "w":
		cfg.Game.WhiteHuman = true
	case "black", "b":
		cfg.Game.BlackHuman = true
	case "both":
		cfg.Game.WhiteHuman = true
		cfg.Game.BlackHuman = true
	}
}

// applyOutputFlags sets diagram, FEN and line length options.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = !*noFEN
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = *lineLength
	}
	if *quiet {
		cfg.SetLog(nil)
	}
}
