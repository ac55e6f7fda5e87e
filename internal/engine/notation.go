package engine

import (
	"strings"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/errors"
)

// FindMove resolves a move given in coordinate notation ("e2e4", "a7a8q")
// or as a castling token ("O-O", "O-O-O") to the legal successor position
// it produces.
func FindMove(player chess.Colour, pos chess.Position, text string) (chess.Position, chess.Ply, error) {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, next := range LegalMoves(player, pos) {
		ply := chess.DescribePly(pos, next, player)
		if matchesMove(ply, want) {
			return next, ply, nil
		}
	}
	return chess.Position{}, chess.Ply{}, errors.Wrapf(errors.ErrIllegalMove, "%s cannot play %q", player, text)
}

func matchesMove(ply chess.Ply, want string) bool {
	switch want {
	case "o-o", "0-0":
		return ply.Class == chess.KingsideCastle
	case "o-o-o", "0-0-0":
		return ply.Class == chess.QueensideCastle
	}
	if ply.UCI() == want {
		return true
	}
	// A bare promotion defaults to a queen.
	return len(want) == 4 && ply.PromotedTo.Kind() == chess.Queen && ply.UCI()[:4] == want
}
