package search

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/worker"
)

// State is the phase of a move decision.
type State int32

const (
	Idle State = iota
	Dispatching
	AwaitingCompletion
	Merging
	MoveChosen
	Resigned
	NoMove
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dispatching:
		return "dispatching"
	case AwaitingCompletion:
		return "awaiting completion"
	case Merging:
		return "merging"
	case MoveChosen:
		return "move chosen"
	case Resigned:
		return "resigned"
	case NoMove:
		return "no move"
	default:
		return "unknown"
	}
}

// Decision is the outcome of ChooseMove.
type Decision struct {
	// Outcome is MoveChosen, Resigned or NoMove.
	Outcome State
	// Move is the chosen position, valid only for MoveChosen.
	Move chess.Position
	// Ply describes Move.
	Ply chess.Ply
	// Candidates are all positions sharing the best score, in tie-break
	// order. Move is the first of them. Empty unless a move was chosen.
	Candidates []chess.Position
	// Best is the global best score for the mover.
	Best int
	// Pieces holds the per-piece results in candidate order.
	Pieces []PieceResult
	// Nodes is the total number of tree nodes searched.
	Nodes int
}

// Automaton chooses moves for a player by searching every piece's first
// plies concurrently on a bounded pool of workers.
type Automaton struct {
	cfg   config.SearchConfig
	log   zerolog.Logger
	mu    sync.Mutex // one decision at a time
	state atomic.Int32

	// search runs one piece's tree; SearchPiece unless a test wraps it.
	search func(player chess.Colour, pos chess.Position, from chess.Square, depth int) PieceResult
}

// NewAutomaton creates an automaton using the search settings and logger of
// cfg.
func NewAutomaton(cfg *config.Config) *Automaton {
	return NewAutomatonWithLogger(cfg.Search, cfg.Logger())
}

// NewAutomatonWithLogger creates an automaton with an explicit logger.
func NewAutomatonWithLogger(cfg *config.SearchConfig, log zerolog.Logger) *Automaton {
	return &Automaton{
		cfg:    *cfg,
		log:    log.With().Str("component", "automaton").Logger(),
		search: SearchPiece,
	}
}

// State returns the phase of the current or last decision.
func (a *Automaton) State() State {
	return State(a.state.Load())
}

func (a *Automaton) setState(s State) {
	a.state.Store(int32(s))
	a.log.Trace().Stringer("state", s).Msg("state change")
}

// ChooseMove selects a move for player in pos at the configured quality.
func (a *Automaton) ChooseMove(ctx context.Context, player chess.Colour, pos chess.Position) (Decision, error) {
	return a.ChooseMoveWithQuality(ctx, player, pos, a.cfg.Quality)
}

// ChooseMoveWithQuality selects a move searching quality plies deep.
// A player without legal moves gets a NoMove decision, not an error.
// The context is only checked before the search is dispatched; once
// dispatched, every piece search runs to completion.
func (a *Automaton) ChooseMoveWithQuality(ctx context.Context, player chess.Colour, pos chess.Position, quality int) (Decision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quality < config.MinQuality || quality > config.MaxQuality {
		return Decision{}, errors.Wrapf(errors.ErrInvalidConfig, "quality %d", quality)
	}
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	a.setState(Idle)
	if !engine.HasLegalMoves(player, pos) {
		a.setState(NoMove)
		a.log.Info().Stringer("player", player).Msg("no legal move")
		return Decision{Outcome: NoMove, Best: Unevaluated}, nil
	}

	results := a.dispatch(player, pos, quality)

	a.setState(Merging)
	decision := a.merge(player, pos, results)
	a.setState(decision.Outcome)

	ev := a.log.Info().
		Stringer("player", player).
		Int("quality", quality).
		Int("best", decision.Best).
		Int("nodes", decision.Nodes)
	if decision.Outcome == MoveChosen {
		ev = ev.Stringer("move", decision.Ply).Int("alternatives", len(decision.Candidates)-1)
	}
	ev.Msg(decision.Outcome.String())
	return decision, nil
}

// dispatch searches every candidate piece on the worker pool and returns
// the results in candidate order. It returns once all searches finished.
func (a *Automaton) dispatch(player chess.Colour, pos chess.Position, quality int) []PieceResult {
	a.setState(Dispatching)
	pieces := engine.Candidates(player, pos)
	pool := worker.NewPool(a.cfg.Workers, len(pieces), func(item worker.WorkItem[chess.Square]) worker.ProcessResult[PieceResult] {
		r := a.search(player, pos, item.Value, quality)
		a.log.Debug().
			Stringer("piece", r.Piece).
			Stringer("from", r.From).
			Int("best", r.Best).
			Int("plies", len(r.Candidates)).
			Int("nodes", r.Nodes).
			Int("collisions", r.Collisions).
			Msg("piece searched")
		return worker.ProcessResult[PieceResult]{Value: r, Index: item.Index}
	})
	pool.Start()
	for i, from := range pieces {
		pool.Submit(worker.WorkItem[chess.Square]{Value: from, Index: i})
	}

	a.setState(AwaitingCompletion)
	// The result buffer holds one result per piece, so Close cannot block
	// on an unread channel.
	pool.Close()

	results := make([]PieceResult, len(pieces))
	for r := range pool.Results() {
		results[r.Index] = r.Value
	}
	return results
}

// jumpsAhead reports whether a ply of this class goes to the front of the
// merged candidates instead of the back.
func jumpsAhead(class chess.MoveClass) bool {
	return class.IsCastle() || class == chess.PawnDoubleAdvance
}

// merge picks the globally best candidates and orders them. Walking the
// pieces in candidate order, castles and pawn double advances are put in
// front of everything gathered so far and every other ply is appended.
// The king comes last, so castling leads, then double advances from the
// last pawn to the first, then piece moves, single pawn steps and king
// moves.
func (a *Automaton) merge(player chess.Colour, pos chess.Position, results []PieceResult) Decision {
	d := Decision{Best: Unevaluated, Pieces: results}
	for _, r := range results {
		d.Nodes += r.Nodes
		if r.Best > d.Best {
			d.Best = r.Best
		}
	}

	type ranked struct {
		pos chess.Position
		ply chess.Ply
	}
	var front, back []ranked
	for _, r := range results {
		if len(r.Candidates) == 0 || r.Best != d.Best {
			continue
		}
		for _, p := range r.BestPositions() {
			m := ranked{pos: p, ply: chess.DescribePly(pos, p, player)}
			if jumpsAhead(m.ply.Class) {
				front = append(front, m)
			} else {
				back = append(back, m)
			}
		}
	}
	slices.Reverse(front)
	merged := append(front, back...)

	if len(merged) == 0 {
		d.Outcome = NoMove
		return d
	}
	if d.Best < a.cfg.ResignThreshold {
		d.Outcome = Resigned
		return d
	}

	for _, m := range merged {
		if a.cfg.CheckConsistency && engine.IsInCheck(player, m.pos) {
			errors.Invariant("king safety", "%s would leave its king capturable with %s from %s", player, m.ply, pos)
		}
		d.Candidates = append(d.Candidates, m.pos)
	}
	d.Outcome = MoveChosen
	d.Move = merged[0].pos
	d.Ply = merged[0].ply
	return d
}
