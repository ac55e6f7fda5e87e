// Package game plays chess games between humans and automata. A Game owns
// the current position, the player to move and the history of plies, and
// asks the search package for moves whenever an automaton is to move.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/rdnp/mice/internal/chess"
	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/engine"
	"github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/hashing"
	"github.com/rdnp/mice/internal/search"
)

// Controller says who makes the decisions for a player.
type Controller int

const (
	Automaton Controller = iota
	Human
)

// String returns the controller name.
func (c Controller) String() string {
	if c == Human {
		return "human"
	}
	return "automaton"
}

// Role is the per-game record of how a player is controlled.
type Role struct {
	Controller Controller
	// Quality is the search depth used when the controller is an automaton.
	Quality int
}

// Result is the outcome of a game.
type Result int

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result in PGN notation.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Reason explains why a game ended.
type Reason int

const (
	NotOver Reason = iota
	Checkmate
	Stalemate
	Resignation
	PlyLimit
	Repetition
	InsufficientMaterial
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Resignation:
		return "resignation"
	case PlyLimit:
		return "ply limit"
	case Repetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "not over"
	}
}

// Game is a single game. All methods are safe for concurrent use; Advance
// holds the game for the duration of the search.
type Game struct {
	mu sync.Mutex

	id        string
	start     chess.Position
	position  chess.Position
	active    chess.Colour
	roles     [2]Role // indexed by colour
	history   []chess.Ply
	positions []chess.Position // position before each ply
	result    Result
	reason    Reason
	seen      *hashing.Table[occurrence, int]

	maxPlies  int
	vary      bool
	automaton *search.Automaton
	log       zerolog.Logger

	created time.Time
	updated time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithPosition starts the game from pos with toMove to play.
func WithPosition(pos chess.Position, toMove chess.Colour) Option {
	return func(g *Game) {
		g.start = pos
		g.position = pos
		g.active = toMove
	}
}

// WithRole sets how colour is controlled.
func WithRole(colour chess.Colour, role Role) Option {
	return func(g *Game) {
		g.roles[colour] = role
	}
}

// WithAutomaton shares an automaton between games.
func WithAutomaton(a *search.Automaton) Option {
	return func(g *Game) {
		g.automaton = a
	}
}

// WithLogger sets the game logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// New creates a game from the standard starting position. Roles, the ply
// limit and move variation come from cfg and may be overridden by opts.
func New(cfg *config.Config, opts ...Option) *Game {
	now := time.Now()
	g := &Game{
		id:       uuid.NewString(),
		start:    chess.NewPosition(),
		position: chess.NewPosition(),
		active:   chess.White,
		maxPlies: cfg.Game.MaxPlies,
		vary:     cfg.Game.Vary,
		log:      cfg.Logger(),
		seen:     hashing.NewTable[occurrence, int](0),
		created:  now,
		updated:  now,
	}
	g.roles[chess.White] = roleFor(cfg.Game.WhiteHuman, cfg.Search.Quality)
	g.roles[chess.Black] = roleFor(cfg.Game.BlackHuman, cfg.Search.Quality)

	for _, opt := range opts {
		opt(g)
	}
	if g.automaton == nil {
		g.automaton = search.NewAutomatonWithLogger(cfg.Search, g.log)
	}
	g.log = g.log.With().Str("game", g.id).Logger()
	g.record()
	g.checkFinished()
	return g
}

// FromFEN creates a game from a FEN string.
func FromFEN(cfg *config.Config, fen string, opts ...Option) (*Game, error) {
	pos, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(cfg, append([]Option{WithPosition(pos, toMove)}, opts...)...), nil
}

func roleFor(human bool, quality int) Role {
	if human {
		return Role{Controller: Human}
	}
	return Role{Controller: Automaton, Quality: quality}
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// Position returns the current position.
func (g *Game) Position() chess.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

// ActivePlayer returns the player to move.
func (g *Game) ActivePlayer() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Role returns how colour is controlled.
func (g *Game) Role(colour chess.Colour) Role {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roles[colour]
}

// SetRole changes how colour is controlled, e.g. to let the engine take
// over from a human.
func (g *Game) SetRole(colour chess.Colour, role Role) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roles[colour] = role
}

// History returns a copy of the plies played so far.
func (g *Game) History() []chess.Ply {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]chess.Ply(nil), g.history...)
}

// PositionBefore returns the position in which ply i was played.
func (g *Game) PositionBefore(i int) (chess.Position, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.positions) {
		return chess.Position{}, false
	}
	return g.positions[i], true
}

// CreatedAt returns when the game was created.
func (g *Game) CreatedAt() time.Time {
	return g.created
}

// UpdatedAt returns when the game last changed.
func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updated
}

// StartPosition returns the position the game started from.
func (g *Game) StartPosition() chess.Position {
	return g.start
}

// Result returns the outcome and why the game ended.
func (g *Game) Result() (Result, Reason) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result, g.reason
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result != Undecided
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.FEN(g.position, g.active)
}

// Turn plays next, which must be one of the legal successors of the
// current position.
func (g *Game) Turn(next chess.Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlayable(""); err != nil {
		return err
	}
	for _, legal := range engine.LegalMoves(g.active, g.position) {
		if legal.Equal(next) {
			g.play(next)
			return nil
		}
	}
	return &errors.GameError{
		Err:      errors.ErrIllegalMove,
		GameID:   g.id,
		PlyNum:   len(g.history) + 1,
		MoveText: chess.DescribePly(g.position, next, g.active).String(),
	}
}

// Move plays a move given in coordinate notation such as "e2e4", "e7e8q"
// or "O-O".
func (g *Game) Move(text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlayable(text); err != nil {
		return err
	}
	next, _, err := engine.FindMove(g.active, g.position, text)
	if err != nil {
		return &errors.GameError{Err: err, GameID: g.id, PlyNum: len(g.history) + 1, MoveText: text}
	}
	g.play(next)
	return nil
}

// Advance lets the automaton controlling the active player choose and play
// a move. A resignation ends the game in favour of the opponent; a player
// without a move is checkmated or stalemated.
func (g *Game) Advance(ctx context.Context) (search.Decision, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlayable(""); err != nil {
		return search.Decision{}, err
	}
	role := g.roles[g.active]
	if role.Controller != Automaton {
		return search.Decision{}, &errors.GameError{
			Err:    errors.ErrNotAutomaton,
			GameID: g.id,
			PlyNum: len(g.history) + 1,
		}
	}

	d, err := g.automaton.ChooseMoveWithQuality(ctx, g.active, g.position, role.Quality)
	if err != nil {
		return d, errors.Wrapf(err, "game %s", g.id)
	}

	switch d.Outcome {
	case search.MoveChosen:
		next := d.Move
		if g.vary && len(d.Candidates) > 1 {
			next = d.Candidates[frand.Intn(len(d.Candidates))]
		}
		g.play(next)
	case search.Resigned:
		g.finish(winnerOf(g.active.Opposite()), Resignation)
	default:
		g.checkFinished()
	}
	return d, nil
}

// Play advances the game while automata are to move. It returns when the
// game is over, a human is to move or ctx is cancelled.
func (g *Game) Play(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.IsOver() || g.Role(g.ActivePlayer()).Controller != Automaton {
			return nil
		}
		if _, err := g.Advance(ctx); err != nil {
			return err
		}
	}
}

// Resign ends the game with colour's opponent as the winner.
func (g *Game) Resign(colour chess.Colour) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlayable(""); err != nil {
		return err
	}
	g.finish(winnerOf(colour.Opposite()), Resignation)
	return nil
}

func (g *Game) checkPlayable(moveText string) error {
	if g.result == Undecided {
		return nil
	}
	return &errors.GameError{
		Err:      errors.ErrGameOver,
		GameID:   g.id,
		PlyNum:   len(g.history) + 1,
		MoveText: moveText,
	}
}

// play records next as the active player's ply and hands over the move.
func (g *Game) play(next chess.Position) {
	ply := chess.DescribePly(g.position, next, g.active)
	g.history = append(g.history, ply)
	g.positions = append(g.positions, g.position)
	g.position = next
	g.active = g.active.Opposite()
	g.updated = time.Now()

	g.log.Info().
		Int("ply", len(g.history)).
		Stringer("player", ply.Mover).
		Stringer("move", ply).
		Msg("turn")

	if g.checkFinished() {
		return
	}
	if g.record() >= 3 {
		g.finish(Draw, Repetition)
		return
	}
	if g.maxPlies > 0 && len(g.history) >= g.maxPlies {
		g.finish(Draw, PlyLimit)
	}
}

// checkFinished ends the game if the active player has no legal move or
// neither side can mate.
func (g *Game) checkFinished() bool {
	switch engine.Classify(g.active, g.position) {
	case engine.Checkmate:
		g.finish(winnerOf(g.active.Opposite()), Checkmate)
	case engine.Stalemate:
		g.finish(Draw, Stalemate)
	default:
		if !engine.HasInsufficientMaterial(g.position) {
			return false
		}
		g.finish(Draw, InsufficientMaterial)
	}
	return true
}

// occurrence identifies a repeatable game state: the board together with
// the player to move.
type occurrence struct {
	pos    chess.Position
	toMove chess.Colour
}

func (o occurrence) Hash() uint64 {
	if o.toMove == chess.White {
		return o.pos.Hash()
	}
	return ^o.pos.Hash()
}

func (o occurrence) Equal(other occurrence) bool {
	return o.toMove == other.toMove && o.pos.Equal(other.pos)
}

// record counts the current state and returns how often it has occurred.
func (g *Game) record() int {
	key := occurrence{pos: g.position, toMove: g.active}
	n, _ := g.seen.Get(key)
	n++
	g.seen.Put(key, n)
	return n
}

func (g *Game) finish(result Result, reason Reason) {
	g.result, g.reason = result, reason
	g.updated = time.Now()
	g.log.Info().
		Stringer("result", result).
		Stringer("reason", reason).
		Int("plies", len(g.history)).
		Msg("game over")
}

func winnerOf(colour chess.Colour) Result {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}
