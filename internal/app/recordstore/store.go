// Package recordstore owns the persisted store state: the owner identity and
// the ordered record list. It is the only place that reads or writes the
// state backend, and Update is the only mutation primitive.
package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-store/internal/domain"
	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// ErrNilBackend is returned by New when no backend is supplied.
var ErrNilBackend = errors.New("recordstore: nil state backend")

// TransformFunc computes the next state from the current one. Returning an
// error aborts the update with nothing persisted.
type TransformFunc func(current todo.State) (todo.State, error)

// RecordStore wraps a [ports.StateStore] with the initialize/load/save/update
// contract. It holds no locks: callers are expected to serialize access.
type RecordStore struct {
	backend ports.StateStore
}

// New creates a RecordStore over backend.
func New(backend ports.StateStore) (*RecordStore, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	return &RecordStore{backend: backend}, nil
}

// Initialize builds a new state owned by owner with the given records and
// persists it. The records are not validated. Backends implementing
// [ports.StateCreator] reject the write with domain.ErrConflict when a state
// already exists; others overwrite it.
func (s *RecordStore) Initialize(ctx context.Context, owner todo.Identity, initial []todo.Todo) (*todo.State, error) {
	state, err := todo.NewState(owner, initial)
	if err != nil {
		return nil, err
	}

	creator, ok := s.backend.(ports.StateCreator)
	if !ok {
		if err := s.Save(ctx, &state); err != nil {
			return nil, err
		}
		return &state, nil
	}

	if err := creator.Create(ctx, &state); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("store already initialized: %w", err)
		}
		return nil, fmt.Errorf("creating state: %w", err)
	}
	return &state, nil
}

// Load returns the persisted state, or an error wrapping domain.ErrNotFound
// if Initialize was never called.
func (s *RecordStore) Load(ctx context.Context) (*todo.State, error) {
	state, err := s.backend.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("store not initialized: %w", err)
		}
		return nil, fmt.Errorf("loading state: %w", err)
	}
	return state, nil
}

// Save persists the full state, overwriting any prior state.
func (s *RecordStore) Save(ctx context.Context, state *todo.State) error {
	if err := s.backend.Save(ctx, state); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// Update loads the current state, applies fn to a private copy and saves the
// result. If fn fails its error is returned as is and nothing is written.
func (s *RecordStore) Update(ctx context.Context, fn TransformFunc) error {
	current, err := s.Load(ctx)
	if err != nil {
		return err
	}

	next, err := fn(current.Clone())
	if err != nil {
		return err
	}

	return s.Save(ctx, &next)
}
