package engine

import "github.com/rdnp/mice/internal/chess"

// Status classifies a position for the player to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Classify reports whether the player to move is checkmated, stalemated or
// still has a legal move.
func Classify(player chess.Colour, pos chess.Position) Status {
	if HasLegalMoves(player, pos) {
		return Ongoing
	}
	if IsInCheck(player, pos) {
		return Checkmate
	}
	return Stalemate
}

// HasInsufficientMaterial reports whether neither side can possibly mate:
// bare kings, a single minor piece, or one bishop each on squares of the
// same colour.
func HasInsufficientMaterial(pos chess.Position) bool {
	var minors [2][]chess.Square // indexed by colour

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.At(sq)
		switch piece.Kind() {
		case chess.NoKind, chess.King:
			continue
		case chess.Knight, chess.Bishop:
			minors[piece.Colour()] = append(minors[piece.Colour()], sq)
		default:
			// Any pawn, rook, or queen means sufficient material
			return false
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white)+len(black) <= 1:
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return pos.At(w).Kind() == chess.Bishop && pos.At(b).Kind() == chess.Bishop &&
			isLightSquare(w) == isLightSquare(b)
	}
	return false
}

func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
