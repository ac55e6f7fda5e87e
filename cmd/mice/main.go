// mice is a chess engine that searches every piece's moves concurrently and
// picks the move with the best material outcome.
package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/game"
	"github.com/rdnp/mice/internal/output"
	"github.com/rdnp/mice/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("mice version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run dispatches to the mode selected by the flags. Human moves are read
// from in and prompts are written to prompt.
func run(ctx context.Context, cfg *config.Config, in io.Reader, prompt io.Writer) error {
	switch *humanSide {
	case "", "white", "w", "black", "b", "both":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "-human %q: want white, black or both", *humanSide)
	}

	switch {
	case *perftDepth > 0:
		return runPerft(ctx, cfg)
	case *selfPlay != 0 || *humanSide != "":
		return runGame(ctx, cfg, in, prompt)
	default:
		return runAnalysis(ctx, cfg)
	}
}

// startPosition returns the position given by -fen after playing -moves.
func startPosition() (chess.Position, chess.Colour, error) {
	fen := *fenString
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return pos, toMove, err
	}
	for _, text := range strings.Fields(*moveList) {
		next, _, err := engine.FindMove(toMove, pos, text)
		if err != nil {
			return pos, toMove, err
		}
		pos, toMove = next, toMove.Opposite()
	}
	return pos, toMove, nil
}

// runPerft counts the leaf positions below the start position.
func runPerft(ctx context.Context, cfg *config.Config) error {
	pos, toMove, err := startPosition()
	if err != nil {
		return err
	}

	if *divide {
		counts := engine.Divide(toMove, pos, *perftDepth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, counts[m])
		}
	}

	nodes, err := engine.Perft(ctx, toMove, pos, *perftDepth, cfg.Search.Workers)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", *perftDepth, nodes)
	return nil
}

// runAnalysis chooses a move for the side to move and reports it.
func runAnalysis(ctx context.Context, cfg *config.Config) error {
	pos, toMove, err := startPosition()
	if err != nil {
		return err
	}

	automaton := search.NewAutomaton(cfg)
	d, err := automaton.ChooseMove(ctx, toMove, pos)
	if err != nil {
		return err
	}

	if cfg.Output.JSONFormat {
		return output.OutputDecisionJSON(d, pos, cfg)
	}
	output.OutputPosition(pos, toMove, cfg)
	output.OutputDecision(d, cfg)
	if d.Outcome == search.NoMove {
		fmt.Fprintln(cfg.OutputFile, engine.Classify(toMove, pos))
	}
	return nil
}

// runGame plays a game between the configured players and writes it out
// once it is over or input runs out.
func runGame(ctx context.Context, cfg *config.Config, in io.Reader, prompt io.Writer) error {
	pos, toMove, err := startPosition()
	if err != nil {
		return err
	}
	g := game.New(cfg, game.WithPosition(pos, toMove))

	scanner := bufio.NewScanner(in)
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := g.ActivePlayer()
		if g.Role(player).Controller == game.Human {
			more, err := humanTurn(g, scanner, prompt)
			if err != nil {
				return err
			}
			if !more {
				break
			}
			continue
		}

		d, err := g.Advance(ctx)
		if err != nil {
			return err
		}
		if !cfg.Output.JSONFormat {
			output.OutputDecision(d, cfg)
			if cfg.Output.ShowBoard && d.Outcome == search.MoveChosen {
				output.WriteBoard(cfg.OutputFile, g.Position())
			}
		}
	}

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return err
	}
	return writer.Close()
}

// humanTurn reads moves until one is legal. It returns false when input
// is exhausted.
func humanTurn(g *game.Game, scanner *bufio.Scanner, prompt io.Writer) (bool, error) {
	player := g.ActivePlayer()
	for {
		fmt.Fprintf(prompt, "%s to move: ", player)
		if !scanner.Scan() {
			fmt.Fprintln(prompt)
			return false, scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "resign", "quit":
			return true, g.Resign(player)
		case "board":
			output.WriteBoard(prompt, g.Position())
			continue
		}

		err := g.Move(text)
		if err == nil {
			return true, nil
		}
		if !stderrors.Is(err, errors.ErrIllegalMove) {
			return false, err
		}
		fmt.Fprintf(prompt, "%v\n", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `mice version %s

Usage: mice [options]

Without a mode option, mice chooses a move for the side to move in the
start position (-fen, then -moves) and prints it.

Examples:
  mice -q 5                          Choose a move from the initial position
  mice -fen "<fen>" -J               Choose a move and print a JSON report
  mice -selfplay 40 -vary            Let the engine play itself for 40 plies
  mice -human white -q 3             Play white against the engine
  mice -perft 4 -divide              Count positions to depth 4

Options:
`, programVersion)
	flag.PrintDefaults()
}
