package engine

import (
	"errors"
	"testing"

	"github.com/rdnp/mice/internal/chess"
	mierrors "github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/testutil"
)

func TestFindMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantClass chess.MoveClass
		wantFEN   string
	}{
		{
			name:      "double advance",
			fen:       InitialFEN,
			move:      "e2e4",
			wantClass: chess.PawnDoubleAdvance,
			wantFEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:      "knight",
			fen:       InitialFEN,
			move:      "g1f3",
			wantClass: chess.PieceMove,
			wantFEN:   "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1",
		},
		{
			name:      "kingside castle",
			fen:       testutil.CastlingFEN,
			move:      "O-O",
			wantClass: chess.KingsideCastle,
			wantFEN:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1",
		},
		{
			name:      "queenside castle as king move",
			fen:       testutil.CastlingFEN,
			move:      "e1c1",
			wantClass: chess.QueensideCastle,
			wantFEN:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/2KR3R b kq - 0 1",
		},
		{
			name:      "default promotion",
			fen:       testutil.PromotionFEN,
			move:      "a7a8",
			wantClass: chess.PawnMoveWithPromotion,
			wantFEN:   "Q7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:      "underpromotion",
			fen:       testutil.PromotionFEN,
			move:      "a7a8n",
			wantClass: chess.PawnMoveWithPromotion,
			wantFEN:   "N7/7k/8/8/8/8/8/K7 b - - 0 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, toMove := mustFEN(t, tt.fen)
			next, ply, err := FindMove(toMove, pos, tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ply.Class, tt.wantClass)
			testutil.AssertEqual(t, FEN(next, toMove.Opposite()), tt.wantFEN)
		})
	}
}

func TestFindMove_Illegal(t *testing.T) {
	pos, toMove := mustFEN(t, InitialFEN)
	for _, move := range []string{"e2e5", "O-O", "e7e5", "xyz"} {
		_, _, err := FindMove(toMove, pos, move)
		if !errors.Is(err, mierrors.ErrIllegalMove) {
			t.Errorf("FindMove(%q) error = %v, want ErrIllegalMove", move, err)
		}
	}
}
