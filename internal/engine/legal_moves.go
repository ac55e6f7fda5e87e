package engine

import (
	"slices"

	"github.com/rdnp/mice/internal/chess"
)

// Candidates returns the squares of the player's pieces in the order their
// moves are generated: pieces other than pawns and the king first, then the
// pawns, then the king. The board is scanned file by file from the a-file;
// pawns keep that order while the other pieces are reversed, so the piece
// found last comes first.
func Candidates(player chess.Colour, pos chess.Position) []chess.Square {
	var pieces, pawns []chess.Square
	king := chess.NoSquare
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.SquareOf(file, rank)
			piece, ok := pos.OccupantAt(sq)
			if !ok || piece.Colour() != player {
				continue
			}
			switch piece.Kind() {
			case chess.Pawn:
				pawns = append(pawns, sq)
			case chess.King:
				king = sq
			default:
				pieces = append(pieces, sq)
			}
		}
	}
	slices.Reverse(pieces)
	result := append(pieces, pawns...)
	if king != chess.NoSquare {
		result = append(result, king)
	}
	return result
}

// Moves returns every position the player can reach in one move, in
// candidate order. With considerCheck, moves leaving the player's own king
// capturable are discarded.
func Moves(player chess.Colour, pos chess.Position, considerCheck bool) []chess.Position {
	var moves []chess.Position
	for _, from := range Candidates(player, pos) {
		if considerCheck {
			moves = append(moves, PieceLegalMoves(pos, from)...)
		} else {
			moves = append(moves, PieceMoves(pos, from)...)
		}
	}
	return moves
}

// LegalMoves returns the player's legal successor positions.
func LegalMoves(player chess.Colour, pos chess.Position) []chess.Position {
	return Moves(player, pos, true)
}

// PieceLegalMoves returns the moves of the piece on from that do not leave
// its own king in check.
func PieceLegalMoves(pos chess.Position, from chess.Square) []chess.Position {
	piece, ok := pos.OccupantAt(from)
	if !ok {
		return nil
	}
	candidates := PieceMoves(pos, from)
	legal := candidates[:0]
	for _, next := range candidates {
		if !IsInCheck(piece.Colour(), next) {
			legal = append(legal, next)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(player chess.Colour, pos chess.Position) bool {
	for _, from := range Candidates(player, pos) {
		for _, next := range PieceMoves(pos, from) {
			if !IsInCheck(player, next) {
				return true
			}
		}
	}
	return false
}
