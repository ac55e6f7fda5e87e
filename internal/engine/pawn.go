package engine

import "github.com/rdnp/mice/internal/chess"

// startRank returns the rank from which a colour's pawns may advance two.
func startRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// promotionRank returns the far rank for a colour's pawns.
func promotionRank(colour chess.Colour) int {
	return chess.HomeRank(colour.Opposite())
}

// enPassantRank returns the rank a colour's pawn must stand on to capture
// en passant.
func enPassantRank(colour chess.Colour) int {
	if colour == chess.White {
		return 4
	}
	return 3
}

// pawnMoves generates advances, captures, en passant and promotions.
func pawnMoves(pos chess.Position, from chess.Square) []chess.Position {
	colour := pos.At(from).Colour()
	dir := chess.ColourOffset(colour)
	var moves []chess.Position

	// Forward moves
	if one, ok := from.Offset(0, dir); ok && pos.At(one) == chess.NoPiece {
		moves = appendPawnMove(moves, pos, from, one, colour)
		if from.Rank() == startRank(colour) {
			if two, ok := one.Offset(0, dir); ok && pos.At(two) == chess.NoPiece {
				moves = append(moves, pos.Derive(from, two))
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if target, occupied := pos.OccupantAt(to); occupied && target.Colour() != colour {
			moves = appendPawnMove(moves, pos, from, to, colour)
		}
	}

	if m, ok := enPassantMove(pos, from, colour); ok {
		moves = append(moves, m)
	}
	return moves
}

// appendPawnMove adds a plain pawn move, or its four promotions when the
// target is on the far rank.
func appendPawnMove(moves []chess.Position, pos chess.Position, from, to chess.Square, colour chess.Colour) []chess.Position {
	next := pos.Derive(from, to)
	if to.Rank() != promotionRank(colour) {
		return append(moves, next)
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, next.Place(to, chess.MakePiece(colour, kind)))
	}
	return moves
}

// enPassantMove captures the pawn that just advanced two squares past the
// pawn on from. The captured pawn is removed from beside the mover.
func enPassantMove(pos chess.Position, from chess.Square, colour chess.Colour) (chess.Position, bool) {
	file, ok := pos.EnPassantFile()
	if !ok || from.Rank() != enPassantRank(colour) || chess.Abs(file-from.File()) != 1 {
		return chess.Position{}, false
	}
	victim := chess.SquareOf(file, from.Rank())
	if !pos.At(victim).Is(colour.Opposite(), chess.Pawn) {
		return chess.Position{}, false
	}
	to := chess.SquareOf(file, from.Rank()+chess.ColourOffset(colour))
	if pos.At(to) != chess.NoPiece {
		return chess.Position{}, false
	}
	return pos.Derive(from, to).Remove(victim), true
}
