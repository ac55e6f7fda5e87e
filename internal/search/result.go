package search

import "github.com/rdnp/mice/internal/chess"

// Candidate is a first ply together with its backed-up score.
type Candidate struct {
	Position chess.Position
	Value    int
}

// PieceResult is the outcome of searching one piece's first plies.
type PieceResult struct {
	From  chess.Square
	Piece chess.Piece
	// Best is the highest candidate value, Unevaluated without candidates.
	Best int
	// Candidates holds every first ply in generation order.
	Candidates []Candidate
	// Nodes is the size of the piece's tree.
	Nodes int
	// Collisions counts Zobrist hash collisions in the tree.
	Collisions int
}

// BestPositions returns the first plies attaining Best.
func (r PieceResult) BestPositions() []chess.Position {
	var best []chess.Position
	for _, c := range r.Candidates {
		if c.Value == r.Best {
			best = append(best, c.Position)
		}
	}
	return best
}

// SearchPiece builds the tree for the piece on from and scores each of its
// first plies for player.
func SearchPiece(player chess.Colour, pos chess.Position, from chess.Square, depth int) PieceResult {
	tree := BuildTree(player, pos, from, depth)
	result := PieceResult{
		From:  from,
		Piece: pos.At(from),
		Best:  Unevaluated,
		Nodes: tree.Len(),

		Collisions: tree.Collisions(),
	}
	for _, child := range tree.Root().Successors {
		v := child.Evaluation(player)
		result.Candidates = append(result.Candidates, Candidate{Position: child.Position, Value: v})
		if v > result.Best {
			result.Best = v
		}
	}
	return result
}
