// Package memory provides an in-process implementation of [ports.StateStore]
// used for tests and the local profile. State does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StateStore    = (*Store)(nil)
	_ ports.StateCreator  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps a private copy of the last saved state.
type Store struct {
	mu    sync.RWMutex
	state *todo.State
}

// New creates an empty (uninitialized) store.
func New() *Store {
	return &Store{}
}

// Load returns a copy of the saved state, or domain.ErrNotFound.
func (s *Store) Load(_ context.Context) (*todo.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil, domain.ErrNotFound
	}
	c := s.state.Clone()
	return &c, nil
}

// Save replaces the stored state with a copy of state.
func (s *Store) Save(_ context.Context, state *todo.State) error {
	c := state.Clone()

	s.mu.Lock()
	s.state = &c
	s.mu.Unlock()
	return nil
}

// Create stores a copy of state unless one is already stored.
func (s *Store) Create(_ context.Context, state *todo.State) error {
	c := state.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil {
		return domain.ErrConflict
	}
	s.state = &c
	return nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string {
	return "state-store"
}

// HealthCheck always succeeds for the in-process store.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
