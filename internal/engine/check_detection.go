package engine

import "github.com/rdnp/mice/internal/chess"

// IsInCheck returns true if the player's king could be captured by one of the
// opponent's moves. A position without the player's king is not in check.
func IsInCheck(player chess.Colour, pos chess.Position) bool {
	king := pos.KingSquare(player)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, king, player.Opposite())
}

// IsSquareAttacked returns true if a piece of colour by could capture on sq.
// Castling, quiet pawn advances and en passant never capture on an occupied
// square, so they are not considered.
func IsSquareAttacked(pos chess.Position, sq chess.Square, by chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind sq.
	pawn := chess.MakePiece(by, chess.Pawn)
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, -chess.ColourOffset(by)); ok && pos.At(from) == pawn {
			return true
		}
	}

	if attackedByJump(pos, sq, knightOffsets, chess.MakePiece(by, chess.Knight)) ||
		attackedByJump(pos, sq, kingOffsets, chess.MakePiece(by, chess.King)) {
		return true
	}

	queen := chess.MakePiece(by, chess.Queen)
	return attackedByRay(pos, sq, diagonalDirs, chess.MakePiece(by, chess.Bishop), queen) ||
		attackedByRay(pos, sq, straightDirs, chess.MakePiece(by, chess.Rook), queen)
}

func attackedByJump(pos chess.Position, sq chess.Square, offsets []offset, attacker chess.Piece) bool {
	for _, o := range offsets {
		if from, ok := sq.Offset(o[0], o[1]); ok && pos.At(from) == attacker {
			return true
		}
	}
	return false
}

func attackedByRay(pos chess.Position, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece, occupied := pos.OccupantAt(from)
			if occupied {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
