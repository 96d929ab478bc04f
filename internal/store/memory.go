// Package store keeps live game sessions in memory for the HTTP server.
// State is lost when the process restarts.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tatianab/number-game/internal/engine"
)

// ErrNotFound is returned for an unknown game ID.
var ErrNotFound = errors.New("game not found")

// Store holds sessions keyed by game ID.
type Store interface {
	// Add stores a new session and returns its ID.
	Add(ctx context.Context, s *engine.Session) (string, error)

	// Update runs fn with exclusive access to the session with the given ID.
	Update(ctx context.Context, id string, fn func(*engine.Session) error) error
}

// entry serialises access to one session; a Session is not safe for concurrent use.
type entry struct {
	mu      sync.Mutex
	session *engine.Session
}

type memory struct {
	mu    sync.RWMutex // guards games
	games map[string]*entry
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry)}
}

func (m *memory) Add(ctx context.Context, s *engine.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = &entry{session: s}
	return id, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*engine.Session) error) error {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(e.session)
}
