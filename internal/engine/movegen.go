// Package engine generates moves, detects check and classifies positions.
package engine

import "github.com/rdnp/mice/internal/chess"

// offset is a (file, rank) step.
type offset [2]int

var (
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs     = append(append([]offset{}, straightDirs...), diagonalDirs...)
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// generator produces every position reachable by one move of the piece on
// from, without regard to check.
type generator func(pos chess.Position, from chess.Square) []chess.Position

// generators maps each kind to its move generator.
var generators [chess.NumKinds]generator

func init() {
	generators = [chess.NumKinds]generator{
		chess.Pawn:   pawnMoves,
		chess.Knight: jumper(knightOffsets),
		chess.Bishop: slider(diagonalDirs),
		chess.Rook:   slider(straightDirs),
		chess.Queen:  slider(queenDirs),
		chess.King:   kingMoves,
	}
}

// PieceMoves returns the positions reachable by the piece on from, ignoring
// whether the mover's king is left capturable. An empty square yields nil.
func PieceMoves(pos chess.Position, from chess.Square) []chess.Position {
	piece, ok := pos.OccupantAt(from)
	if !ok {
		return nil
	}
	gen := generators[piece.Kind()]
	if gen == nil {
		return nil
	}
	return gen(pos, from)
}

// slider returns a generator for a piece moving along rays.
func slider(dirs []offset) generator {
	return func(pos chess.Position, from chess.Square) []chess.Position {
		return derivations(pos, from, slidingTargets(pos, from, dirs))
	}
}

// jumper returns a generator for a piece moving by fixed offsets.
func jumper(offsets []offset) generator {
	return func(pos chess.Position, from chess.Square) []chess.Position {
		return derivations(pos, from, jumpTargets(pos, from, offsets))
	}
}

func kingMoves(pos chess.Position, from chess.Square) []chess.Position {
	moves := derivations(pos, from, jumpTargets(pos, from, kingOffsets))
	return append(moves, castlingMoves(pos, pos.At(from).Colour())...)
}

func derivations(pos chess.Position, from chess.Square, targets []chess.Square) []chess.Position {
	moves := make([]chess.Position, 0, len(targets))
	for _, to := range targets {
		moves = append(moves, pos.Derive(from, to))
	}
	return moves
}

// slidingTargets casts a ray in every direction until the board edge, an
// own piece (excluded) or the first enemy piece (included).
func slidingTargets(pos chess.Position, from chess.Square, dirs []offset) []chess.Square {
	colour := pos.At(from).Colour()
	var targets []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			piece, occupied := pos.OccupantAt(to)
			if occupied {
				if piece.Colour() != colour {
					targets = append(targets, to)
				}
				break
			}
			targets = append(targets, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// jumpTargets returns the on-board offsets not occupied by an own piece.
func jumpTargets(pos chess.Position, from chess.Square, offsets []offset) []chess.Square {
	colour := pos.At(from).Colour()
	targets := make([]chess.Square, 0, len(offsets))
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if piece, occupied := pos.OccupantAt(to); occupied && piece.Colour() == colour {
			continue
		}
		targets = append(targets, to)
	}
	return targets
}
