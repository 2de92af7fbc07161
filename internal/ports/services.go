package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// TodoService defines the service port for the owner-controlled record list.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every mutating call carries the authenticated caller identity.
type TodoService interface {
	// Initialize creates the store with caller as owner and the given
	// initial records. Returns domain.ErrConflict if the store already exists.
	Initialize(ctx context.Context, caller todo.Identity, initial []todo.Todo) (*InitializeResult, error)

	// Add appends a record.
	// Returns domain.ErrUnauthorized if caller is not the owner.
	Add(ctx context.Context, caller todo.Identity, t todo.Todo) (*TransitionResult, error)

	// Remove drops every record sharing t's ID.
	// Returns domain.ErrUnauthorized if caller is not the owner.
	Remove(ctx context.Context, caller todo.Identity, t todo.Todo) (*TransitionResult, error)

	// Update replaces every record sharing t's ID with t, appended last.
	// Returns domain.ErrUnauthorized if caller is not the owner.
	Update(ctx context.Context, caller todo.Identity, t todo.Todo) (*TransitionResult, error)

	// Reset clears the record list.
	// Returns domain.ErrUnauthorized if caller is not the owner.
	Reset(ctx context.Context, caller todo.Identity) (*TransitionResult, error)

	// List returns every record in stored order. No authorization applies.
	// Returns domain.ErrNotFound if the store was never initialized.
	List(ctx context.Context) ([]todo.Todo, error)
}

// InitializeResult describes a freshly created store.
type InitializeResult struct {
	Method string
	Owner  todo.Identity
	Count  int
}

// TransitionResult tags a successful mutation with its action name
// ("add", "remove", "update" or "reset").
type TransitionResult struct {
	Action string
}
