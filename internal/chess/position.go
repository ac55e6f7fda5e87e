package chess

import "strings"

// Position is an immutable board snapshot: occupancy of the 64 squares,
// castling rights and the en passant file, together with a Zobrist hash.
//
// Positions are plain values. Every derivation returns a new Position, so
// they can be shared between goroutines and stored in maps freely.
type Position struct {
	squares  [NumSquares]Piece
	castling CastlingRights
	epFile   int8 // -1 if no en passant capture is possible
	hash     uint64
}

// Castling rights lost when a piece leaves or enters a square.
var castlingMask = func() [NumSquares]CastlingRights {
	var m [NumSquares]CastlingRights
	m[SquareOf(4, 0)] = WhiteKingSide | WhiteQueenSide
	m[SquareOf(7, 0)] = WhiteKingSide
	m[SquareOf(0, 0)] = WhiteQueenSide
	m[SquareOf(4, 7)] = BlackKingSide | BlackQueenSide
	m[SquareOf(7, 7)] = BlackKingSide
	m[SquareOf(0, 7)] = BlackQueenSide
	return m
}()

// NewPosition creates the standard chess starting position.
func NewPosition() Position {
	var squares [NumSquares]Piece
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		squares[SquareOf(file, 0)] = W(backRank[file])
		squares[SquareOf(file, 1)] = W(Pawn)
		squares[SquareOf(file, 6)] = B(Pawn)
		squares[SquareOf(file, 7)] = B(backRank[file])
	}
	return NewPositionFrom(squares, AllCastling, -1)
}

// NewPositionFrom builds a position from raw occupancy. Castling rights whose
// king or rook is not on its original square are dropped, and the en passant
// file is kept only if a capture onto it is actually possible, so that equal
// boards always compare and hash equal.
func NewPositionFrom(squares [NumSquares]Piece, castling CastlingRights, epFile int) Position {
	p := Position{squares: squares, castling: castling & AllCastling, epFile: -1}
	for _, colour := range Colours {
		home := HomeRank(colour)
		if !p.At(SquareOf(4, home)).Is(colour, King) {
			p.castling &^= KingSide(colour) | QueenSide(colour)
		}
		if !p.At(SquareOf(7, home)).Is(colour, Rook) {
			p.castling &^= KingSide(colour)
		}
		if !p.At(SquareOf(0, home)).Is(colour, Rook) {
			p.castling &^= QueenSide(colour)
		}
	}
	if epFile >= 0 && epFile < BoardSize {
		p.epFile = p.enPassantFor(int8(epFile))
	}
	p.hash = p.computeHash()
	return p
}

// enPassantFor validates an en passant file against the board: the pawn that
// just advanced two squares must stand on its fourth rank with an opposing
// pawn next to it.
func (p Position) enPassantFor(file int8) int8 {
	for _, colour := range Colours {
		rank := 3
		if colour == Black {
			rank = 4
		}
		sq := SquareOf(int(file), rank)
		if p.At(sq).Is(colour, Pawn) && p.hasAdjacentEnemyPawn(sq, colour) {
			return file
		}
	}
	return -1
}

// At returns the piece on sq, NoPiece if the square is empty.
func (p Position) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.squares[sq]
}

// OccupantAt returns the piece on sq and whether there is one.
func (p Position) OccupantAt(sq Square) (Piece, bool) {
	piece := p.At(sq)
	return piece, piece != NoPiece
}

// LocationOf returns the first square in board-scan order holding piece,
// or NoSquare.
func (p Position) LocationOf(piece Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.squares[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

// KingSquare returns the square of the colour's king, or NoSquare if the king
// is not on the board.
func (p Position) KingSquare(colour Colour) Square {
	return p.LocationOf(MakePiece(colour, King))
}

// Squares returns the squares occupied by the colour in board-scan order.
func (p Position) Squares(colour Colour) []Square {
	result := make([]Square, 0, 16)
	for sq := Square(0); sq < NumSquares; sq++ {
		if piece := p.squares[sq]; piece != NoPiece && piece.Colour() == colour {
			result = append(result, sq)
		}
	}
	return result
}

// CastlingRights returns the remaining castling rights.
func (p Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantFile returns the file on which an en passant capture is possible.
func (p Position) EnPassantFile() (int, bool) {
	return int(p.epFile), p.epFile >= 0
}

// Hash returns the Zobrist hash of the position.
func (p Position) Hash() uint64 {
	return p.hash
}

// Equal reports structural equality: same occupancy by kind and owner, same
// castling rights and same en passant file.
func (p Position) Equal(other Position) bool {
	if p.hash != other.hash {
		return false
	}
	return p.squares == other.squares &&
		p.castling == other.castling &&
		p.epFile == other.epFile
}

// Evaluate returns the material balance in centipawns from the player's
// point of view.
func (p Position) Evaluate(player Colour) int {
	value := 0
	for _, piece := range p.squares {
		if piece == NoPiece {
			continue
		}
		if piece.Colour() == player {
			value += piece.Value()
		} else {
			value -= piece.Value()
		}
	}
	return value
}

// Derive returns the position reached by moving the piece on from to to.
// A capture happens implicitly by overwriting to. If to is NoSquare the piece
// is removed from the board. Castling rights and the en passant file are
// recomputed from the transition.
func (p Position) Derive(from, to Square) Position {
	next := p
	piece := NoPiece
	lost := NoCastling
	if from.Valid() {
		piece = next.squares[from]
		next.squares[from] = NoPiece
		next.hash ^= pieceKey(piece, from)
		lost |= castlingMask[from]
	}
	if to.Valid() {
		next.hash ^= pieceKey(next.squares[to], to)
		next.squares[to] = piece
		next.hash ^= pieceKey(piece, to)
		lost |= castlingMask[to]
	}
	next.setCastling(p.castling &^ lost)
	next.setEnPassant(-1)

	if piece.Kind() == Pawn && from.Valid() && to.Valid() &&
		Abs(to.Rank()-from.Rank()) == 2 && next.hasAdjacentEnemyPawn(to, piece.Colour()) {
		next.setEnPassant(int8(to.File()))
	}
	return next
}

// Remove returns the position without the piece on sq.
func (p Position) Remove(sq Square) Position {
	return p.Derive(sq, NoSquare)
}

// Place returns the position with piece put on sq, replacing any occupant.
// It is used to substitute a promoted piece for a pawn.
func (p Position) Place(sq Square, piece Piece) Position {
	next := p
	next.hash ^= pieceKey(next.squares[sq], sq)
	next.squares[sq] = piece
	next.hash ^= pieceKey(piece, sq)
	next.setCastling(p.castling &^ castlingMask[sq])
	next.setEnPassant(-1)
	return next
}

func (p *Position) setCastling(c CastlingRights) {
	p.hash ^= castleKey(p.castling) ^ castleKey(c)
	p.castling = c
}

func (p *Position) setEnPassant(file int8) {
	p.hash ^= enPassantKey(p.epFile) ^ enPassantKey(file)
	p.epFile = file
}

func (p Position) hasAdjacentEnemyPawn(sq Square, colour Colour) bool {
	enemy := MakePiece(colour.Opposite(), Pawn)
	for _, df := range []int{-1, 1} {
		if side, ok := sq.Offset(df, 0); ok && p.squares[side] == enemy {
			return true
		}
	}
	return false
}

// computeHash recomputes the hash from scratch.
func (p Position) computeHash() uint64 {
	var h uint64
	for sq, piece := range p.squares {
		h ^= pieceKey(piece, Square(sq))
	}
	return h ^ castleKey(p.castling) ^ enPassantKey(p.epFile)
}

// Placement returns the piece placement field of FEN, rank 8 first.
func (p Position) Placement() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			piece := p.squares[SquareOf(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String returns placement, castling rights and en passant file.
func (p Position) String() string {
	ep := "-"
	if p.epFile >= 0 {
		ep = string(rune('a' + p.epFile))
	}
	return p.Placement() + " " + p.castling.String() + " " + ep
}
