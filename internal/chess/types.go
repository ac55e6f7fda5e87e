// Package chess provides core chess types and the immutable position model.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = iota
	White
)

// Colours lists both players, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Material values in centipawns.
var kindValues = [NumKinds]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 300,
	Rook:   450,
	Queen:  950,
	King:   100000,
}

// Value returns the material value of the kind in centipawns.
func (k Kind) Value() int {
	if k <= NoKind || k >= NumKinds {
		return 0
	}
	return kindValues[k]
}

// PromotionKinds are the kinds a pawn may turn into, in generation order.
var PromotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece: a kind plus an owner.
// The zero value is NoPiece.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the owner.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return p.Kind().Value()
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p == MakePiece(colour, kind)
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short name such as "wN" or "bK".
func (p Piece) String() string {
	if p == NoPiece {
		return "--"
	}
	if p.Colour() == White {
		return "w" + string(p.Kind().Letter())
	}
	return "b" + string(p.Kind().Letter())
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a board location: file 0-7 (a-h) and rank 0-7 (1-8).
// Squares are indexed rank*8+file, so ascending order is board-scan order.
type Square int8

// NoSquare is the absent location.
const NoSquare Square = -1

// SquareOf returns the square at the given file and rank, or NoSquare when
// either coordinate is off the board.
func SquareOf(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the file index 0-7.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index 0-7.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square df files and dr ranks away.
// The boolean is false when the result would leave the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	to := SquareOf(s.File()+df, s.Rank()+dr)
	return to, to != NoSquare
}

// String returns algebraic notation such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return SquareOf(int(text[0]-'a'), int(text[1]-'1')), nil
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// CastlingRights is a bitmask of the four independent castling rights.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// KingSide returns the king's side right of a colour.
func KingSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

// QueenSide returns the queen's side right of a colour.
func QueenSide(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// Has reports whether all rights in r are present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field, "-" if empty.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var out []byte
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'}} {
		if c.Has(r.right) {
			out = append(out, r.letter)
		}
	}
	return string(out)
}
