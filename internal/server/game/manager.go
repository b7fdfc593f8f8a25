package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"othello/internal/engine"
	"othello/internal/othello"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrCannotPass   = errors.New("pass is only allowed without legal moves")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame(mode othello.PlayerMode, strategy engine.Strategy) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		Pos:       othello.NewPosition(mode),
		Strategy:  strategy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g.snapshot()
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Play 校验并落子，返回落子后的对局
func (m *Manager) Play(id string, mv othello.Move) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := g.apply(mv); err != nil {
		return nil, err
	}
	return g.snapshot(), nil
}

func (m *Manager) Pass(id string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := g.pass(); err != nil {
		return nil, err
	}
	return g.snapshot(), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}
