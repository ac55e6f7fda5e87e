package hashing

import (
	"testing"

	"github.com/rdnp/mice/internal/chess"
)

func BenchmarkTable_Insert(b *testing.B) {
	start := chess.NewPosition()
	var positions []chess.Position
	for from := chess.Square(8); from < 16; from++ {
		for _, dr := range []int{1, 2} {
			to, _ := from.Offset(0, dr)
			positions = append(positions, start.Derive(from, to))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table := NewTable[chess.Position, int](0)
		for j, p := range positions {
			table.Insert(p, j)
		}
	}
}

func BenchmarkPositionHash(b *testing.B) {
	start := chess.NewPosition()
	for i := 0; i < b.N; i++ {
		_ = start.Derive(chess.SquareOf(6, 0), chess.SquareOf(5, 2)).Hash()
	}
}
