package game

import (
	stderrors "errors"
	"testing"

	"github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/testutil"
)

func TestManager(t *testing.T) {
	m := NewManager(testConfig())

	first := m.NewGame()
	second, err := m.NewGameFromFEN(testutil.KiwipeteFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Len(), 2)
	testutil.AssertTrue(t, first.ID() != second.ID())

	got, err := m.Get(second.ID())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == second)

	ids := m.IDs()
	testutil.AssertEqual(t, len(ids), 2)
	testutil.AssertTrue(t, ids[0] == first.ID() || first.CreatedAt().Equal(second.CreatedAt()))

	testutil.AssertNoError(t, m.Remove(first.ID()))
	_, err = m.Get(first.ID())
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrGameNotFound), "got %v", err)
	testutil.AssertTrue(t, stderrors.Is(m.Remove(first.ID()), errors.ErrGameNotFound))
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestManager_InvalidFEN(t *testing.T) {
	m := NewManager(testConfig())
	_, err := m.NewGameFromFEN("8/8/8 w - - 0 1")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN), "got %v", err)
	testutil.AssertEqual(t, m.Len(), 0)
}
