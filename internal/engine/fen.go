package engine

import (
	"strings"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenKinds maps uppercase FEN letters to piece kinds.
var fenKinds = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// ParseFEN parses a FEN string into a position and the colour to move.
// The halfmove clock and fullmove number are accepted but not kept.
func ParseFEN(fen string) (chess.Position, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, chess.White, fenError(fen, "", "piece placement", "")
	}

	squares, err := parsePlacement(fen, parts[0])
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	toMove, err := parseSideToMove(fen, parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	castling, err := parseCastlingRights(fen, parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	epFile, err := parseEnPassant(fen, parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	return chess.NewPositionFrom(squares, castling, epFile), toMove, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// constant inputs.
func MustParseFEN(fen string) (chess.Position, chess.Colour) {
	pos, toMove, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos, toMove
}

func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePlacement parses the piece placement field of a FEN string.
func parsePlacement(fen, placement string) ([chess.NumSquares]chess.Piece, error) {
	var squares [chess.NumSquares]chess.Piece
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return squares, fenError(fen, "placement", "8 ranks", placement)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				colour := chess.White
				upper := c
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
					upper = c - ('a' - 'A')
				}
				kind, ok := fenKinds[upper]
				if !ok {
					return squares, fenError(fen, "placement", "piece letter", string(c))
				}
				if file >= chess.BoardSize {
					return squares, fenError(fen, "placement", "8 files", row)
				}
				squares[chess.SquareOf(file, rank)] = chess.MakePiece(colour, kind)
				file++
			}
		}
		if file != chess.BoardSize {
			return squares, fenError(fen, "placement", "8 files", row)
		}
	}
	return squares, nil
}

// parseSideToMove parses the side to move field. White moves if absent.
func parseSideToMove(fen string, parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fenError(fen, "side to move", "w or b", parts[1])
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(fen string, parts []string) (chess.CastlingRights, error) {
	if len(parts) < 3 || parts[2] == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights |= chess.WhiteKingSide
		case 'Q':
			rights |= chess.WhiteQueenSide
		case 'k':
			rights |= chess.BlackKingSide
		case 'q':
			rights |= chess.BlackQueenSide
		default:
			return chess.NoCastling, fenError(fen, "castling", "KQkq or -", parts[2])
		}
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field into a file,
// -1 if there is none.
func parseEnPassant(fen string, parts []string) (int, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return -1, nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil || (sq.Rank() != 2 && sq.Rank() != 5) {
		return -1, fenError(fen, "en passant", "square on rank 3 or 6", parts[3])
	}
	return sq.File(), nil
}

// FEN converts a position and the colour to move to a FEN string. The
// clocks are not tracked and always written as "0 1".
func FEN(pos chess.Position, toMove chess.Colour) string {
	var sb strings.Builder

	sb.WriteString(pos.Placement())
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights().String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos, toMove)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos chess.Position, toMove chess.Colour) {
	file, ok := pos.EnPassantFile()
	if !ok {
		sb.WriteByte('-')
		return
	}
	// The target is behind the pawn that just advanced.
	rank := enPassantRank(toMove) + chess.ColourOffset(toMove)
	sb.WriteString(chess.SquareOf(file, rank).String())
}
