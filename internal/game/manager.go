package game

import (
	"sort"
	"sync"

	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

// Manager keeps the tables served over HTTP.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*Game
	recorder Recorder
	options  []Option
}

func NewManager(recorder Recorder, opts ...Option) *Manager {
	return &Manager{
		games:    map[string]*Game{},
		recorder: recorder,
		options:  opts,
	}
}

// Create opens a table and deals the first hand. A non-zero seed fixes the
// shuffle.
func (m *Manager) Create(seed int64) (*Game, error) {
	opts := append([]Option{WithRecorder(m.recorder)}, m.options...)
	if seed != 0 {
		opts = append(opts, WithSeed(seed))
	}

	g := New(opts...)
	if err := g.StartRound(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.games[g.ID()] = g
	m.mu.Unlock()

	logger.Infof("New game created, ID=%s", g.ID())
	return g, nil
}

func (m *Manager) Game(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errutil.ErrGameNotFound, "id %s", id)
	}
	return g, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.games)
}

// List returns count table ids in lexical order, starting at offset.
func (m *Manager) List(offset, count int) []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	if offset >= len(ids) {
		return []string{}
	}
	ids = ids[offset:]
	if count < len(ids) {
		ids = ids[:count]
	}
	return ids
}
