package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/game"
	"github.com/rdnp/mice/internal/processing"
	"github.com/rdnp/mice/internal/search"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	White      string     `json:"white"`
	Black      string     `json:"black"`
	Result     string     `json:"result"`
	Reason     string     `json:"reason,omitempty"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`

	Analysis *JSONAnalysis `json:"analysis,omitempty"`
}

// JSONAnalysis summarises a replayed game.
type JSONAnalysis struct {
	Captures             int  `json:"captures"`
	Checks               int  `json:"checks"`
	Castles              int  `json:"castles"`
	MaterialBalance      int  `json:"materialBalance"`
	Repetition           bool `json:"repetition,omitempty"`
	Underpromotion       bool `json:"underpromotion,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Move       string `json:"move"`
	UCI        string `json:"uci"`
	Class      string `json:"class"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONDecision represents an automaton decision in JSON format.
type JSONDecision struct {
	Outcome    string      `json:"outcome"`
	Move       *JSONMove   `json:"move,omitempty"`
	Best       int         `json:"best"`
	Nodes      int         `json:"nodes"`
	Candidates []string    `json:"candidates,omitempty"` // UCI, tie-break order
	Pieces     []JSONPiece `json:"pieces,omitempty"`
}

// JSONPiece summarises the search of one piece.
type JSONPiece struct {
	From  string `json:"from"`
	Piece string `json:"piece"`
	Best  *int   `json:"best,omitempty"` // nil if the piece cannot move
	Plies int    `json:"plies"`
	Nodes int    `json:"nodes"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(g *game.Game, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, GameToJSON(g, cfg))
}

// OutputDecisionJSON outputs an automaton decision in JSON format.
func OutputDecisionJSON(d search.Decision, before chess.Position, cfg *config.Config) error {
	return encodeJSON(cfg.OutputFile, DecisionToJSON(d, before))
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game to JSON format. FENs after each ply are
// included when the output configuration asks for them.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	history := g.History()
	result, reason := g.Result()

	jg := &JSONGame{
		ID:       g.ID(),
		White:    playerName(g.Role(chess.White)),
		Black:    playerName(g.Role(chess.Black)),
		Result:   result.String(),
		PlyCount: len(history),
		FinalFEN: g.FEN(),
	}
	if reason != game.NotOver {
		jg.Reason = reason.String()
	}

	first := g.ActivePlayer()
	if len(history) > 0 {
		first = history[0].Mover
	}
	jg.InitialFEN = engine.FEN(g.StartPosition(), first)

	moveNum := 1
	for i, ply := range history {
		jm := convertPly(ply)
		if ply.Mover == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		if cfg.Output.ShowFEN {
			if i+1 < len(history) {
				if next, ok := g.PositionBefore(i + 1); ok {
					jm.FEN = engine.FEN(next, ply.Mover.Opposite())
				}
			} else {
				jm.FEN = jg.FinalFEN
			}
		}
		jg.Moves = append(jg.Moves, jm)
	}
	jg.Analysis = analysisToJSON(processing.AnalyzeGame(g))
	return jg
}

func analysisToJSON(a *processing.GameAnalysis) *JSONAnalysis {
	return &JSONAnalysis{
		Captures:             a.Captures,
		Checks:               a.Checks,
		Castles:              a.Castles,
		MaterialBalance:      a.MaterialBalance,
		Repetition:           a.RepetitionDetected(),
		Underpromotion:       a.UnderpromotionFound(),
		InsufficientMaterial: a.HasInsufficientMaterial,
	}
}

// DecisionToJSON converts a decision taken in before to JSON format.
func DecisionToJSON(d search.Decision, before chess.Position) *JSONDecision {
	jd := &JSONDecision{
		Outcome: d.Outcome.String(),
		Best:    d.Best,
		Nodes:   d.Nodes,
	}
	if d.Outcome == search.MoveChosen {
		jm := convertPly(d.Ply)
		jm.FEN = engine.FEN(d.Move, d.Ply.Mover.Opposite())
		jd.Move = &jm
		for _, c := range d.Candidates {
			jd.Candidates = append(jd.Candidates, chess.DescribePly(before, c, d.Ply.Mover).UCI())
		}
	}
	for _, r := range d.Pieces {
		jp := JSONPiece{
			From:  r.From.String(),
			Piece: pieceTypeName(r.Piece.Kind()),
			Plies: len(r.Candidates),
			Nodes: r.Nodes,
		}
		if r.Best != search.Unevaluated {
			best := r.Best
			jp.Best = &best
		}
		jd.Pieces = append(jd.Pieces, jp)
	}
	return jd
}

// convertPly converts a single ply to JSON format.
func convertPly(ply chess.Ply) JSONMove {
	jm := JSONMove{
		Color: colorName(ply.Mover),
		Move:  ply.String(),
		UCI:   ply.UCI(),
		Class: ply.Class.String(),
		Piece: pieceTypeName(ply.Piece.Kind()),
	}
	if ply.From.Valid() {
		jm.From = ply.From.String()
	}
	if ply.To.Valid() {
		jm.To = ply.To.String()
	}
	if ply.IsCapture() {
		jm.Captured = pieceTypeName(ply.Captured.Kind())
	}
	if ply.PromotedTo != chess.NoPiece {
		jm.Promotion = pieceTypeName(ply.PromotedTo.Kind())
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece kind in lower case, empty for no piece.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoKind || k >= chess.NumKinds {
		return ""
	}
	return strings.ToLower(k.String())
}
