package chess

import "math/rand"

// Zobrist keys for pieces on squares, castling rights and en passant file.
var (
	zobristPiece     [1 << (PieceShift + 3)][NumSquares]uint64
	zobristCastle    [AllCastling + 1]uint64
	zobristEnPassant [BoardSize]uint64
)

func init() {
	initZobrist()
}

// initZobrist fills the key tables. A fixed seed keeps hashes reproducible
// between runs.
func initZobrist() {
	rnd := rand.New(rand.NewSource(0x6D696365))
	next := func() uint64 {
		v := rnd.Uint64()
		for v == 0 {
			v = rnd.Uint64()
		}
		return v
	}

	for p := range zobristPiece {
		for sq := 0; sq < NumSquares; sq++ {
			zobristPiece[p][sq] = next()
		}
	}
	// No rights hash to zero so positions without castling keep the raw
	// piece hash.
	for cr := 1; cr < len(zobristCastle); cr++ {
		zobristCastle[cr] = next()
	}
	for f := 0; f < BoardSize; f++ {
		zobristEnPassant[f] = next()
	}
}

// pieceKey returns the key of piece p standing on sq, zero for NoPiece.
func pieceKey(p Piece, sq Square) uint64 {
	if p == NoPiece {
		return 0
	}
	return zobristPiece[p][sq]
}

func castleKey(c CastlingRights) uint64 {
	return zobristCastle[c]
}

func enPassantKey(file int8) uint64 {
	if file < 0 {
		return 0
	}
	return zobristEnPassant[file]
}
