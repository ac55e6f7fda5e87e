package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/game"
	"github.com/rdnp/mice/internal/search"
	"github.com/rdnp/mice/internal/testutil"
)

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	WriteBoard(&buf, chess.NewPosition())

	want := strings.Join([]string{
		"8  r n b q k b n r",
		"7  p p p p p p p p",
		"6  . . . . . . . .",
		"5  . . . . . . . .",
		"4  . . . . . . . .",
		"3  . . . . . . . .",
		"2  P P P P P P P P",
		"1  R N B Q K B N R",
		"   a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e2-e4", "e7-e5", "2."} {
		ow.Write(s)
	}
	ow.NewLine()
	testutil.AssertEqual(t, buf.String(), "1. e2-e4\ne7-e5 2.\n")
}

func TestOutputPosition(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)
	cfg.Output.ShowBoard = false

	OutputPosition(chess.NewPosition(), chess.White, cfg)
	testutil.AssertEqual(t, buf.String(), engine.InitialFEN+"\n")
}

func TestOutputGame_FromFEN(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)

	g, err := game.FromFEN(cfg, "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.Move("e8d8"))

	OutputGame(g, cfg)
	out := buf.String()
	testutil.AssertContains(t, out, `[SetUp "1"]`)
	testutil.AssertContains(t, out, `[FEN "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1"]`)
	testutil.AssertContains(t, out, "1... Ke8-d8 *")
}

func TestOutputGame_Finished(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)

	g := playTestGame(t, cfg, "f2f3", "e7e5", "g2g4", "d8h4")
	OutputGame(g, cfg)
	out := buf.String()
	testutil.AssertContains(t, out, `[Result "0-1"]`)
	testutil.AssertContains(t, out, `[Termination "checkmate"]`)
	testutil.AssertContains(t, out, "2. g2-g4 Qd8-h4 0-1")
}

func TestGameToJSON(t *testing.T) {
	cfg := testConfig()
	g := playTestGame(t, cfg, "e2e4", "d7d5", "e4d5")

	jg := GameToJSON(g, cfg)
	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.Reason, "")

	capture := jg.Moves[2]
	testutil.AssertEqual(t, capture.MoveNumber, 2)
	testutil.AssertEqual(t, capture.UCI, "e4d5")
	testutil.AssertEqual(t, capture.Piece, "pawn")
	testutil.AssertEqual(t, capture.Captured, "pawn")
	testutil.AssertEqual(t, capture.FEN, jg.FinalFEN)
	testutil.AssertEqual(t, jg.Moves[1].MoveNumber, 0)
	testutil.AssertEqual(t, jg.Moves[1].Color, "black")
	testutil.AssertTrue(t, jg.Moves[0].FEN != "", "FEN after each ply")

	testutil.AssertNotNil(t, jg.Analysis)
	testutil.AssertEqual(t, jg.Analysis.Captures, 1)
	testutil.AssertEqual(t, jg.Analysis.Checks, 0)
	testutil.AssertEqual(t, jg.Analysis.MaterialBalance, 100)
	testutil.AssertFalse(t, jg.Analysis.Repetition)
}

func TestDecisionToJSON(t *testing.T) {
	cfg := testConfig()
	a := search.NewAutomaton(cfg)
	pos := chess.NewPosition()

	d, err := a.ChooseMoveWithQuality(context.Background(), chess.White, pos, 1)
	testutil.AssertNoError(t, err)

	jd := DecisionToJSON(d, pos)
	testutil.AssertEqual(t, jd.Outcome, "move chosen")
	testutil.AssertEqual(t, len(jd.Candidates), 20)
	testutil.AssertEqual(t, jd.Move.UCI, jd.Candidates[0])
	testutil.AssertEqual(t, len(jd.Pieces), 16)

	movable := 0
	for _, p := range jd.Pieces {
		if p.Best != nil {
			movable++
		}
	}
	testutil.AssertEqual(t, movable, 10, "two knights and eight pawns")

	var buf bytes.Buffer
	cfg.SetOutput(&buf)
	testutil.AssertNoError(t, OutputDecisionJSON(d, pos, cfg))
	testutil.AssertContains(t, buf.String(), `"outcome": "move chosen"`)
}

func TestOutputDecision(t *testing.T) {
	cfg := testConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)

	OutputDecision(search.Decision{Outcome: search.Resigned, Best: -99550, Nodes: 7}, cfg)
	OutputDecision(search.Decision{Outcome: search.NoMove}, cfg)
	testutil.AssertEqual(t, buf.String(), "resigns (score -99550, 7 nodes)\nno legal move\n")
}
