package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rdnp/mice/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// The root moves are split across at most workers goroutines.
func Perft(ctx context.Context, player chess.Colour, pos chess.Position, depth, workers int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if workers < 1 {
		workers = 1
	}

	var total atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, next := range LegalMoves(player, pos) {
		next := next
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			total.Add(perft(player.Opposite(), next, depth-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// Divide returns the perft count below each root move, keyed by the move in
// coordinate notation.
func Divide(player chess.Colour, pos chess.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, next := range LegalMoves(player, pos) {
		ply := chess.DescribePly(pos, next, player)
		result[ply.UCI()] = perft(player.Opposite(), next, depth-1)
	}
	return result
}

func perft(player chess.Colour, pos chess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(player, pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, next := range moves {
		nodes += perft(player.Opposite(), next, depth-1)
	}
	return nodes
}
