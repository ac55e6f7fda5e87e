package chess

import (
	"testing"

	"github.com/rdnp/mice/internal/testutil"
)

func sq(t *testing.T, text string) Square {
	t.Helper()
	s, err := ParseSquare(text)
	testutil.AssertNoError(t, err)
	return s
}

// move derives a position by moving the piece between two named squares.
func move(t *testing.T, p Position, from, to string) Position {
	t.Helper()
	return p.Derive(sq(t, from), sq(t, to))
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	tests := []struct {
		square string
		piece  Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"h1", W(Rook)},
		{"e2", W(Pawn)},
		{"e7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"e4", NoPiece},
		{"c6", NoPiece},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := p.At(sq(t, tt.square)); got != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	t.Run("castling rights", func(t *testing.T) {
		testutil.AssertEqual(t, p.CastlingRights(), AllCastling)
	})
	t.Run("no en passant", func(t *testing.T) {
		_, ok := p.EnPassantFile()
		testutil.AssertFalse(t, ok)
	})
	t.Run("balanced material", func(t *testing.T) {
		testutil.AssertEqual(t, p.Evaluate(White), 0)
		testutil.AssertEqual(t, p.Evaluate(Black), 0)
	})
	t.Run("string", func(t *testing.T) {
		testutil.AssertEqual(t, p.String(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR KQkq -")
	})
}

func TestHashConsistency(t *testing.T) {
	a := move(t, move(t, NewPosition(), "g1", "f3"), "g8", "f6")
	b := move(t, move(t, NewPosition(), "g8", "f6"), "g1", "f3")

	testutil.AssertTrue(t, a.Equal(b), "transposed knight moves should be equal")
	testutil.AssertEqual(t, a.Hash(), b.Hash())

	var squares [NumSquares]Piece
	for s := Square(0); s < NumSquares; s++ {
		squares[s] = a.At(s)
	}
	rebuilt := NewPositionFrom(squares, a.CastlingRights(), -1)
	testutil.AssertEqual(t, rebuilt.Hash(), a.Hash(), "incremental hash matches full recomputation")
}

func TestDeriveRoundTrip(t *testing.T) {
	start := NewPosition()
	out := move(t, start, "g1", "f3")
	back := move(t, out, "f3", "g1")

	testutil.AssertTrue(t, back.Equal(start))
	testutil.AssertEqual(t, back.Hash(), start.Hash())
	testutil.AssertFalse(t, out.Equal(start))
}

func TestDeriveCapture(t *testing.T) {
	p := move(t, NewPosition(), "e2", "e4")
	p = move(t, p, "d7", "d5")
	p = move(t, p, "e4", "d5")

	testutil.AssertEqual(t, p.At(sq(t, "d5")), W(Pawn))
	testutil.AssertEqual(t, p.At(sq(t, "e4")), NoPiece)
	testutil.AssertEqual(t, p.Evaluate(White), 100)
	testutil.AssertEqual(t, p.Evaluate(Black), -100)
}

func TestRemoveAndPlace(t *testing.T) {
	p := NewPosition().Remove(sq(t, "d8"))
	testutil.AssertEqual(t, p.Evaluate(White), 950)

	p = p.Place(sq(t, "d8"), B(Queen))
	testutil.AssertTrue(t, p.Equal(NewPosition()))
}

func TestCastlingRightsCleared(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     CastlingRights
	}{
		{"white king moves", "e1", "e2", BlackKingSide | BlackQueenSide},
		{"white kingside rook moves", "h1", "h2", WhiteQueenSide | BlackKingSide | BlackQueenSide},
		{"white queenside rook moves", "a1", "a2", WhiteKingSide | BlackKingSide | BlackQueenSide},
		{"black king moves", "e8", "e7", WhiteKingSide | WhiteQueenSide},
		{"black rook captured", "a1", "h8", WhiteKingSide | BlackQueenSide},
		{"unrelated piece", "b1", "c3", AllCastling},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := move(t, NewPosition(), tt.from, tt.to)
			testutil.AssertEqual(t, p.CastlingRights(), tt.want)
		})
	}

	t.Run("rights never restored", func(t *testing.T) {
		p := move(t, NewPosition(), "h1", "h3")
		p = move(t, p, "h3", "h1")
		testutil.AssertFalse(t, p.CastlingRights().Has(WhiteKingSide))
	})
}

func TestEnPassantFile(t *testing.T) {
	t.Run("double advance without adjacent pawn", func(t *testing.T) {
		p := move(t, NewPosition(), "e2", "e4")
		_, ok := p.EnPassantFile()
		testutil.AssertFalse(t, ok)
	})

	t.Run("double advance next to enemy pawn", func(t *testing.T) {
		p := move(t, NewPosition(), "e2", "e4")
		p = move(t, p, "a7", "a6")
		p = move(t, p, "e4", "e5")
		p = move(t, p, "d7", "d5")
		file, ok := p.EnPassantFile()
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, file, 3)
	})

	t.Run("cleared by next derivation", func(t *testing.T) {
		p := move(t, NewPosition(), "e2", "e4")
		p = move(t, p, "a7", "a6")
		p = move(t, p, "e4", "e5")
		p = move(t, p, "d7", "d5")
		p = move(t, p, "g1", "f3")
		_, ok := p.EnPassantFile()
		testutil.AssertFalse(t, ok)
	})
}

func TestNewPositionFromSanitises(t *testing.T) {
	var squares [NumSquares]Piece
	squares[SquareOf(4, 0)] = W(King)
	squares[SquareOf(4, 7)] = B(King)
	squares[SquareOf(7, 0)] = W(Rook)

	p := NewPositionFrom(squares, AllCastling, 2)
	testutil.AssertEqual(t, p.CastlingRights(), WhiteKingSide)
	_, ok := p.EnPassantFile()
	testutil.AssertFalse(t, ok)
}

func TestLocationOf(t *testing.T) {
	p := NewPosition()
	testutil.AssertEqual(t, p.KingSquare(White), sq(t, "e1"))
	testutil.AssertEqual(t, p.KingSquare(Black), sq(t, "e8"))
	testutil.AssertEqual(t, p.LocationOf(W(Knight)), sq(t, "b1"), "first in scan order")

	empty := NewPositionFrom([NumSquares]Piece{}, NoCastling, -1)
	testutil.AssertEqual(t, empty.KingSquare(White), NoSquare)
	testutil.AssertEqual(t, len(p.Squares(Black)), 16)
}

func TestDescribePly(t *testing.T) {
	start := NewPosition()

	t.Run("knight move", func(t *testing.T) {
		ply := DescribePly(start, move(t, start, "g1", "f3"), White)
		testutil.AssertEqual(t, ply.Class, PieceMove)
		testutil.AssertEqual(t, ply.String(), "Ng1-f3")
		testutil.AssertEqual(t, ply.UCI(), "g1f3")
	})

	t.Run("double advance", func(t *testing.T) {
		ply := DescribePly(start, move(t, start, "e2", "e4"), White)
		testutil.AssertEqual(t, ply.Class, PawnDoubleAdvance)
	})

	t.Run("castle", func(t *testing.T) {
		base := start.Remove(sq(t, "f1")).Remove(sq(t, "g1"))
		after := move(t, move(t, base, "e1", "g1"), "h1", "f1")
		ply := DescribePly(base, after, White)
		testutil.AssertEqual(t, ply.Class, KingsideCastle)
		testutil.AssertEqual(t, ply.String(), "O-O")
	})

	t.Run("promotion", func(t *testing.T) {
		var squares [NumSquares]Piece
		squares[sq(t, "a7")] = W(Pawn)
		base := NewPositionFrom(squares, NoCastling, -1)
		after := move(t, base, "a7", "a8").Place(sq(t, "a8"), W(Knight))
		ply := DescribePly(base, after, White)
		testutil.AssertEqual(t, ply.Class, PawnMoveWithPromotion)
		testutil.AssertEqual(t, ply.UCI(), "a7a8n")
	})

	t.Run("en passant", func(t *testing.T) {
		var squares [NumSquares]Piece
		squares[sq(t, "e5")] = W(Pawn)
		squares[sq(t, "d5")] = B(Pawn)
		base := NewPositionFrom(squares, NoCastling, 3)
		after := move(t, base, "e5", "d6").Remove(sq(t, "d5"))
		ply := DescribePly(base, after, White)
		testutil.AssertEqual(t, ply.Class, EnPassantPawnMove)
		testutil.AssertEqual(t, ply.String(), "e5xd6 e.p.")
	})

	t.Run("no change", func(t *testing.T) {
		testutil.AssertEqual(t, DescribePly(start, start, White).Class, NullMove)
	})
}

func TestAbs(t *testing.T) {
	testutil.AssertEqual(t, Abs(-2), 2)
	testutil.AssertEqual(t, Abs(int8(-7)), int8(7))
	testutil.AssertEqual(t, Abs(0), 0)
	testutil.AssertEqual(t, Abs(5), 5)
}
