package game

import (
	"sort"
	"sync"

	"github.com/rdnp/mice/internal/config"
	"github.com/rdnp/mice/internal/errors"
	"github.com/rdnp/mice/internal/search"
)

// Manager keeps games by ID. Games it creates share one automaton, so
// their searches run one at a time.
type Manager struct {
	mu        sync.RWMutex
	cfg       *config.Config
	automaton *search.Automaton
	games     map[string]*Game
}

// NewManager creates a manager whose games use cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:       cfg,
		automaton: search.NewAutomaton(cfg),
		games:     make(map[string]*Game),
	}
}

// NewGame creates and registers a game.
func (m *Manager) NewGame(opts ...Option) *Game {
	g := New(m.cfg, append([]Option{WithAutomaton(m.automaton)}, opts...)...)
	m.Add(g)
	return g
}

// NewGameFromFEN creates and registers a game starting from fen.
func (m *Manager) NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	g, err := FromFEN(m.cfg, fen, append([]Option{WithAutomaton(m.automaton)}, opts...)...)
	if err != nil {
		return nil, err
	}
	m.Add(g)
	return g, nil
}

// Add registers an existing game.
func (m *Manager) Add(g *Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID()] = g
}

// Get returns the game with the given ID.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return g, nil
}

// Remove forgets the game with the given ID.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	delete(m.games, id)
	return nil
}

// IDs returns the IDs of all games, oldest first.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	games := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	m.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt().Equal(games[j].CreatedAt()) {
			return games[i].ID() < games[j].ID()
		}
		return games[i].CreatedAt().Before(games[j].CreatedAt())
	})
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID()
	}
	return ids
}

// Len returns the number of games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
