// Package output renders positions, move decisions and games as text or
// JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/game"
	"github.com/rdnp/mice/internal/search"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard writes a diagram of pos, rank 8 at the top. White pieces are
// upper case, black pieces lower case and empty squares dots.
func WriteBoard(w io.Writer, pos chess.Position) {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.At(chess.SquareOf(file, rank))
			c := byte('.')
			if piece != chess.NoPiece {
				c = piece.Letter()
			}
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	io.WriteString(w, sb.String()) //nolint:errcheck // best-effort console output
}

// OutputPosition writes the position diagram and FEN as configured.
func OutputPosition(pos chess.Position, toMove chess.Colour, cfg *config.Config) {
	w := cfg.OutputFile
	if cfg.Output.ShowBoard {
		WriteBoard(w, pos)
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintln(w, engine.FEN(pos, toMove))
	}
}

// OutputDecision writes a one-line summary of an automaton decision.
func OutputDecision(d search.Decision, cfg *config.Config) {
	w := cfg.OutputFile
	switch d.Outcome {
	case search.MoveChosen:
		fmt.Fprintf(w, "%s %s (score %d, %d alternatives, %d nodes)\n",
			d.Ply.Mover, d.Ply, d.Best, len(d.Candidates)-1, d.Nodes)
	case search.Resigned:
		fmt.Fprintf(w, "resigns (score %d, %d nodes)\n", d.Best, d.Nodes)
	default:
		fmt.Fprintln(w, "no legal move")
	}
}

// OutputGame writes a game in PGN layout: tag pairs, then numbered
// movetext in long algebraic notation terminated by the result.
func OutputGame(g *game.Game, cfg *config.Config) {
	w := cfg.OutputFile

	outputTags(g, w)

	// Blank line between tags and moves
	fmt.Fprintln(w)

	outputMoves(g, cfg, w)

	// Blank line between games
	fmt.Fprintln(w)
}

// outputTags writes the seven tag roster plus the starting position when
// the game did not start from the initial position.
func outputTags(g *game.Game, w io.Writer) {
	result, reason := g.Result()
	tags := [][2]string{
		{"Event", "mice game " + g.ID()},
		{"Site", "?"},
		{"Date", g.CreatedAt().Format("2006.01.02")},
		{"Round", "-"},
		{"White", playerName(g.Role(chess.White))},
		{"Black", playerName(g.Role(chess.Black))},
		{"Result", result.String()},
	}
	if reason != game.NotOver {
		tags = append(tags, [2]string{"Termination", reason.String()})
	}
	if start := g.StartPosition(); !start.Equal(chess.NewPosition()) {
		first := g.ActivePlayer()
		if history := g.History(); len(history) > 0 {
			first = history[0].Mover
		}
		tags = append(tags,
			[2]string{"SetUp", "1"},
			[2]string{"FEN", engine.FEN(start, first)})
	}

	for _, tag := range tags {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}
}

// escapeTagValue escapes backslashes and quotes in PGN tag values.
func escapeTagValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func playerName(role game.Role) string {
	if role.Controller == game.Human {
		return "human"
	}
	return fmt.Sprintf("mice (quality %d)", role.Quality)
}

// outputMoves writes the numbered movetext and the result.
func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, cfg.Output.MaxLineLength)
	history := g.History()

	moveNumber := 1
	for i, ply := range history {
		switch {
		case ply.Mover == chess.White:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(ply.String())
		if ply.Mover == chess.Black {
			moveNumber++
		}
	}

	result, _ := g.Result()
	ow.Write(result.String())
	ow.NewLine()
}
