// Package processing replays finished or running games and analyses them.
package processing

import (
	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/game"
	"github.com/rdnp/mice/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalPosition     chess.Position
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist hashes, one per position reached

	// Extended draw rule detection
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	Captures int
	Checks   int
	Castles  int

	// MaterialBalance is the final material score from White's side.
	MaterialBalance int
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// state is a position together with the player to move, the unit of
// repetition.
type state struct {
	pos    chess.Position
	toMove chess.Colour
}

func (s state) Hash() uint64 {
	return s.pos.Hash() ^ uint64(s.toMove)<<63
}

func (s state) Equal(other state) bool {
	return s.toMove == other.toMove && s.pos.Equal(other.pos)
}

// step is one replayed ply with the positions around it.
type step struct {
	ply    chess.Ply
	before chess.Position
	after  chess.Position
}

// replay returns the plies of g with the positions before and after each.
func replay(g *game.Game) []step {
	history := g.History()
	steps := make([]step, len(history))
	for i, ply := range history {
		before, _ := g.PositionBefore(i)
		after, ok := g.PositionBefore(i + 1)
		if !ok {
			after = g.Position()
		}
		steps[i] = step{ply: ply, before: before, after: after}
	}
	return steps
}

// AnalyzeGame replays a game and analyzes it for various features.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	analysis := &GameAnalysis{FinalPosition: g.StartPosition()}
	steps := replay(g)

	toMove := g.ActivePlayer()
	if len(steps) > 0 {
		toMove = steps[0].ply.Mover
	}
	counts := hashing.NewTable[state, int](0)
	count := func(pos chess.Position, toMove chess.Colour) {
		key := state{pos: pos, toMove: toMove}
		n, _ := counts.Get(key)
		n++
		counts.Put(key, n)
		analysis.Positions = append(analysis.Positions, pos.Hash())

		// 3-fold repetition
		if n >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition (automatic draw)
		if n >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}
	count(analysis.FinalPosition, toMove)

	for _, s := range steps {
		ply := s.ply
		if ply.PromotedTo != chess.NoPiece && ply.PromotedTo.Kind() != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if ply.IsCapture() {
			analysis.Captures++
		}
		if ply.Class.IsCastle() {
			analysis.Castles++
		}
		if engine.IsInCheck(ply.Mover.Opposite(), s.after) {
			analysis.Checks++
		}

		analysis.FinalPosition = s.after
		count(s.after, ply.Mover.Opposite())
	}

	// Check for insufficient material at final position
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(analysis.FinalPosition)
	analysis.MaterialBalance = analysis.FinalPosition.Evaluate(chess.White)
	return analysis
}
