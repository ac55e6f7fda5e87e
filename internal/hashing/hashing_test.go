package hashing

import (
	"testing"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/testutil"
)

// collider hashes every value to the same bucket.
type collider struct {
	id int
}

func (c collider) Hash() uint64 {
	return 42
}

func (c collider) Equal(other collider) bool {
	return c.id == other.id
}

func TestTable_InsertFirstArrivalWins(t *testing.T) {
	table := NewTable[collider, string](0)

	stored, inserted := table.Insert(collider{1}, "first")
	testutil.AssertTrue(t, inserted)
	testutil.AssertEqual(t, stored, "first")

	stored, inserted = table.Insert(collider{1}, "second")
	testutil.AssertFalse(t, inserted)
	testutil.AssertEqual(t, stored, "first")

	got, ok := table.Get(collider{1})
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got, "first")
	testutil.AssertEqual(t, table.Len(), 1)
}

func TestTable_CollisionsStayDistinct(t *testing.T) {
	table := NewTable[collider, int](0)
	for i := 0; i < 5; i++ {
		table.Insert(collider{i}, i*10)
	}

	testutil.AssertEqual(t, table.Len(), 5)
	testutil.AssertEqual(t, table.Collisions(), 4)
	for i := 0; i < 5; i++ {
		got, ok := table.Get(collider{i})
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, got, i*10)
	}
	_, ok := table.Get(collider{9})
	testutil.AssertFalse(t, ok)
}

func TestTable_Put(t *testing.T) {
	table := NewTable[collider, int](0)
	table.Put(collider{1}, 1)
	table.Put(collider{1}, 2)

	got, _ := table.Get(collider{1})
	testutil.AssertEqual(t, got, 2)
	testutil.AssertEqual(t, table.Len(), 1)
}

func TestTable_MaxCapacity(t *testing.T) {
	table := NewTable[collider, int](2)
	table.Insert(collider{1}, 1)
	table.Insert(collider{2}, 2)
	testutil.AssertTrue(t, table.IsFull())

	_, inserted := table.Insert(collider{3}, 3)
	testutil.AssertFalse(t, inserted)
	testutil.AssertEqual(t, table.Len(), 2)

	// Existing keys are still found when full.
	stored, inserted := table.Insert(collider{1}, 99)
	testutil.AssertFalse(t, inserted)
	testutil.AssertEqual(t, stored, 1)
}

func TestTable_Transpositions(t *testing.T) {
	start := chess.NewPosition()
	a := start.Derive(chess.SquareOf(6, 0), chess.SquareOf(5, 2)).Derive(chess.SquareOf(6, 7), chess.SquareOf(5, 5))
	b := start.Derive(chess.SquareOf(6, 7), chess.SquareOf(5, 5)).Derive(chess.SquareOf(6, 0), chess.SquareOf(5, 2))

	table := NewTable[chess.Position, string](0)
	table.Insert(a, "Nf3 Nf6")
	stored, inserted := table.Insert(b, "Nf6 Nf3")

	testutil.AssertFalse(t, inserted, "transposition detected")
	testutil.AssertEqual(t, stored, "Nf3 Nf6")
	testutil.AssertEqual(t, table.Len(), 1)
}
