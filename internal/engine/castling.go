package engine

import "github.com/rdnp/mice/internal/chess"

// castleRule describes one castling option relative to the home rank.
type castleRule struct {
	right    func(chess.Colour) chess.CastlingRights
	rookFile int
	kingTo   int
	rookTo   int
	empty    []int // files between king and rook
	path     []int // files the king stands on, passes or lands on
}

var castleRules = []castleRule{
	{right: chess.KingSide, rookFile: 7, kingTo: 6, rookTo: 5, empty: []int{5, 6}, path: []int{4, 5, 6}},
	{right: chess.QueenSide, rookFile: 0, kingTo: 2, rookTo: 3, empty: []int{1, 2, 3}, path: []int{4, 3, 2}},
}

// castlingMoves returns the castling positions available to colour. The king
// may not start in, pass through or land on an attacked square. Attack
// detection never generates castling, so this cannot recurse.
func castlingMoves(pos chess.Position, colour chess.Colour) []chess.Position {
	rank := chess.HomeRank(colour)
	kingFrom := chess.SquareOf(4, rank)
	if !pos.At(kingFrom).Is(colour, chess.King) {
		return nil
	}

	var moves []chess.Position
	for _, rule := range castleRules {
		if !canCastle(pos, colour, rule) {
			continue
		}
		next := pos.Derive(kingFrom, chess.SquareOf(rule.kingTo, rank))
		next = next.Derive(chess.SquareOf(rule.rookFile, rank), chess.SquareOf(rule.rookTo, rank))
		moves = append(moves, next)
	}
	return moves
}

func canCastle(pos chess.Position, colour chess.Colour, rule castleRule) bool {
	rank := chess.HomeRank(colour)
	if !pos.CastlingRights().Has(rule.right(colour)) {
		return false
	}
	if !pos.At(chess.SquareOf(rule.rookFile, rank)).Is(colour, chess.Rook) {
		return false
	}
	for _, file := range rule.empty {
		if pos.At(chess.SquareOf(file, rank)) != chess.NoPiece {
			return false
		}
	}
	opponent := colour.Opposite()
	for _, file := range rule.path {
		if IsSquareAttacked(pos, chess.SquareOf(file, rank), opponent) {
			return false
		}
	}
	return true
}
