package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// StateStore is the persistence port for the single store instance.
// Implemented by the storage adapters (memory, sqlite, postgres, redis).
type StateStore interface {
	// Load returns the persisted state.
	// Returns domain.ErrNotFound if nothing was ever saved.
	Load(ctx context.Context) (*todo.State, error)

	// Save persists the full state in a single logical write, replacing
	// whatever was stored before.
	Save(ctx context.Context, state *todo.State) error
}

// StateCreator is implemented by backends that can write the first state
// atomically. Create fails with domain.ErrConflict when a state already
// exists, so two hosts sharing one backend cannot both claim ownership.
type StateCreator interface {
	Create(ctx context.Context, state *todo.State) error
}
