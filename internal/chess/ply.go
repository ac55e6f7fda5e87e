package chess

import "fmt"

// MoveClass categorises a ply.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleAdvance
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingMove
	KingsideCastle
	QueensideCastle
	NullMove
)

// String returns a readable class name.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn move"
	case PawnDoubleAdvance:
		return "pawn double advance"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en passant"
	case PieceMove:
		return "piece move"
	case KingMove:
		return "king move"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	default:
		return "null move"
	}
}

// IsCastle reports whether the class is one of the castling classes.
func (c MoveClass) IsCastle() bool {
	return c == KingsideCastle || c == QueensideCastle
}

// Ply is a single half-move: the difference between two consecutive
// positions as seen from the mover.
type Ply struct {
	Mover      Colour
	Piece      Piece
	From       Square
	To         Square
	Captured   Piece
	PromotedTo Piece
	Class      MoveClass
}

// DescribePly reconstructs the ply the mover made to get from before to
// after. Positions that do not differ by one of the mover's moves yield a
// NullMove.
func DescribePly(before, after Position, mover Colour) Ply {
	ply := Ply{Mover: mover, From: NoSquare, To: NoSquare, Class: NullMove}

	var vacated, entered []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		was, is := before.At(sq), after.At(sq)
		if was == is {
			continue
		}
		if was != NoPiece && was.Colour() == mover {
			vacated = append(vacated, sq)
		}
		if is != NoPiece && is.Colour() == mover {
			entered = append(entered, sq)
		}
	}

	switch {
	case len(vacated) == 2 && len(entered) == 2:
		king := MakePiece(mover, King)
		for _, sq := range vacated {
			if before.At(sq) == king {
				ply.From = sq
			}
		}
		for _, sq := range entered {
			if after.At(sq) == king {
				ply.To = sq
			}
		}
		if ply.From == NoSquare || ply.To == NoSquare {
			return ply
		}
		ply.Piece = king
		ply.Class = QueensideCastle
		if ply.To.File() > ply.From.File() {
			ply.Class = KingsideCastle
		}
		return ply
	case len(vacated) == 1 && len(entered) == 1:
	default:
		return ply
	}

	ply.From, ply.To = vacated[0], entered[0]
	ply.Piece = before.At(ply.From)
	ply.Captured = before.At(ply.To)

	switch ply.Piece.Kind() {
	case Pawn:
		switch {
		case after.At(ply.To) != ply.Piece:
			ply.PromotedTo = after.At(ply.To)
			ply.Class = PawnMoveWithPromotion
		case ply.To.File() != ply.From.File() && ply.Captured == NoPiece:
			ply.Captured = MakePiece(mover.Opposite(), Pawn)
			ply.Class = EnPassantPawnMove
		case Abs(ply.To.Rank()-ply.From.Rank()) == 2:
			ply.Class = PawnDoubleAdvance
		default:
			ply.Class = PawnMove
		}
	case King:
		ply.Class = KingMove
	default:
		ply.Class = PieceMove
	}
	return ply
}

// IsCapture reports whether the ply removed an opposing piece.
func (p Ply) IsCapture() bool {
	return p.Captured != NoPiece
}

// UCI returns coordinate notation such as "e2e4" or "e7e8q".
func (p Ply) UCI() string {
	if p.Class == NullMove {
		return "0000"
	}
	s := p.From.String() + p.To.String()
	if p.PromotedTo != NoPiece {
		s += string(p.PromotedTo.Kind().Letter() + 'a' - 'A')
	}
	return s
}

// String returns a long algebraic description, for example "Ng1-f3",
// "e5xd6 e.p." or "O-O".
func (p Ply) String() string {
	switch p.Class {
	case NullMove:
		return "--"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	sep := "-"
	if p.IsCapture() {
		sep = "x"
	}
	prefix := ""
	if p.Piece.Kind() != Pawn {
		prefix = string(p.Piece.Kind().Letter())
	}
	s := fmt.Sprintf("%s%s%s%s", prefix, p.From, sep, p.To)
	switch p.Class {
	case PawnMoveWithPromotion:
		s += "=" + string(p.PromotedTo.Kind().Letter())
	case EnPassantPawnMove:
		s += " e.p."
	}
	return s
}
